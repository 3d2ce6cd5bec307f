package api

import (
	"coffee-finder-service/internal/api/handlers"
	"coffee-finder-service/internal/platform/obs"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(finder handlers.ShopFinder, log *zap.Logger) http.Handler {
	router := httprouter.New()

	shopHandler := handlers.NewShopHandler(finder, log)

	router.GET("/health", handlers.Health(log))
	router.GET("/shops/nearest", shopHandler.Nearest)

	return alice.New(
		corsHandler(),
		recoverPanic(log),
		obs.HTTPMiddleware(log),
	).Then(router)
}
