// Package catalogapi is a local implementation of the coffee shop catalog API:
// it issues short-lived tokens and lists shops to callers holding one.
// It lets the finder run end-to-end without the hosted catalog.
package catalogapi

import (
	"coffee-finder-service/internal/platform/obs"
	"coffee-finder-service/internal/ports"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"go.uber.org/zap"
)

const issuer = "coffee-catalog"

type Server struct {
	repo       ports.ShopRepository
	signingKey []byte
	ttl        time.Duration
	log        *zap.Logger
}

func NewServer(repo ports.ShopRepository, signingKey string, ttl time.Duration, log *zap.Logger) (*Server, error) {
	if repo == nil {
		return nil, errors.New("new catalog server: repository must be non-nil")
	}
	if signingKey == "" {
		return nil, errors.New("new catalog server: signing key must be non-empty")
	}
	if ttl <= 0 {
		return nil, errors.New("new catalog server: token ttl must be positive")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{
		repo:       repo,
		signingKey: []byte(signingKey),
		ttl:        ttl,
		log:        log,
	}, nil
}

// Handler routes the catalog endpoints behind logging middleware.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.POST("/v1/tokens", s.issueToken)
	router.GET("/v1/coffee_shops", s.listShops)

	return alice.New(obs.HTTPMiddleware(s.log)).Then(router)
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, s.log, status, map[string]string{"error": msg})
}
