package catalogapi

import (
	"coffee-finder-service/internal/domain"
	"mime"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// listShops mirrors the hosted catalog: 401 for a bad token, 406 when the
// client will not accept JSON, 503 when the data store fails.
func (s *Server) listShops(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := s.verifyToken(r.URL.Query().Get("token")); err != nil {
		s.log.Debug("rejected token", zap.Error(err))
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if !acceptsJSON(r.Header.Values("Accept")) {
		s.writeError(w, http.StatusNotAcceptable, "only application/json is supported")
		return
	}

	shops, err := s.repo.ListShops(r.Context())
	if err != nil {
		s.log.Error("list shops failed", zap.Error(err))
		s.writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if shops == nil {
		shops = []domain.CoffeeShop{}
	}

	writeJSON(w, s.log, http.StatusOK, shops)
}

// acceptsJSON reports whether an Accept header allows application/json.
// No header at all means anything is acceptable.
func acceptsJSON(values []string) bool {
	if len(values) == 0 {
		return true
	}

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			switch mt {
			case "application/json", "application/*", "*/*":
				return true
			}
		}
	}

	return false
}
