package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
)

// AuthValidator validates the bearer token and sets the user id in context
// (see UserFromContext).
type AuthValidator struct {
	issuer ports.TokenIssuer
}

func NewAuthValidator(issuer ports.TokenIssuer) *AuthValidator {
	return &AuthValidator{issuer: issuer}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeAuthErr(w, "missing or invalid authorization")
			return
		}
		userIDStr, err := m.issuer.ValidateAccessToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			writeAuthErr(w, "invalid token")
			return
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			writeAuthErr(w, "invalid token")
			return
		}
		ctx := WithUser(r.Context(), domain.NewUserID(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeAuthErr(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `","code":"unauthorized"}`))
}
