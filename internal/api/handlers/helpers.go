package handlers

import (
	"coffee-finder-service/internal/api/dto"
	"coffee-finder-service/internal/domain"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, kind domain.Kind, msg string) {
	writeJSON(w, r, log, status, dto.ErrorResponse{Error: dto.ErrorBody{Kind: string(kind), Message: msg}})
}

// writeDomainError renders err as {"error": {"kind", "message"}} with a status
// derived from its kind. Upstream catalog failures become gateway errors.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		writeError(w, r, log, http.StatusInternalServerError, domain.KindGenericError, "internal server error")
		return
	}

	msg := de.Message
	if msg == "" {
		msg = string(de.Kind)
	}
	writeError(w, r, log, statusFor(de.Kind), de.Kind, msg)
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
