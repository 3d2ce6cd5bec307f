package catalogapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token, err := s.newToken(time.Now())
	if err != nil {
		s.log.Error("sign token failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, s.log, http.StatusCreated, map[string]string{"token": token})
}

func (s *Server) newToken(now time.Time) (string, error) {
	claims := jwt.StandardClaims{
		Issuer:    issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// verifyToken accepts only unexpired HS256 tokens signed with our key.
func (s *Server) verifyToken(raw string) error {
	if raw == "" {
		return errors.New("missing token")
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	if !claims.VerifyIssuer(issuer, true) {
		return errors.New("unexpected token issuer")
	}

	return nil
}
