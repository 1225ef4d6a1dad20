package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/idealmodas/crediario/internal/infra/auth"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// RequireAuth exige um Bearer token válido nas rotas do painel.
// Token ausente, malformado ou vencido derruba a requisição com 401.
func RequireAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Token não informado", http.StatusUnauthorized)
				return
			}

			claims, err := manager.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Token inválido ou expirado", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom recupera as claims colocadas pelo RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
