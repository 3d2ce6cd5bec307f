package handlers

import (
	"coffee-finder-service/internal/api/dto"
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// ShopFinder is the service the handler delegates to.
type ShopFinder interface {
	FindNearest(ctx context.Context, query domain.Position) ([]domain.CoffeeShop, error)
}

type ShopHandler struct {
	Finder   ShopFinder
	log      *zap.Logger
	validate *validator.Validate
}

// NewShopHandler returns a handler logging to log; a nil log discards.
func NewShopHandler(finder ShopFinder, log *zap.Logger) *ShopHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShopHandler{Finder: finder, log: log, validate: validator.New()}
}

type nearestRequest struct {
	X string `validate:"required"`
	Y string `validate:"required"`
}

// Nearest serves GET /shops/nearest?x=..&y=..
func (h *ShopHandler) Nearest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	req := nearestRequest{
		X: strings.TrimSpace(q.Get("x")),
		Y: strings.TrimSpace(q.Get("y")),
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, domain.KindInvalidArgument, "x and y query parameters are required")
		return
	}

	x, errX := strconv.ParseFloat(req.X, 64)
	y, errY := strconv.ParseFloat(req.Y, 64)
	if errX != nil || errY != nil {
		writeError(w, r, h.log, http.StatusBadRequest, domain.KindInvalidArgument, "non-numeric input")
		return
	}

	query := domain.Position{X: x, Y: y}
	shops, err := h.Finder.FindNearest(r.Context(), query)
	if err != nil {
		h.log.Warn("find nearest failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("kind", string(domain.KindOf(err))),
			zap.Error(err),
		)
		writeDomainError(w, r, h.log, err)
		return
	}

	res := dto.NearestShopsResponse{
		Shops: make([]dto.ShopResponse, 0, len(shops)),
	}
	for _, s := range shops {
		res.Shops = append(res.Shops, dto.ShopResponse{
			ID:       s.ID,
			Name:     s.Name,
			X:        s.X,
			Y:        s.Y,
			Distance: domain.Distance(s.Position, query),
		})
	}

	writeJSON(w, r, h.log, http.StatusOK, res)
}
