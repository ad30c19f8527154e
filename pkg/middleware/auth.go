package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/author-ranking-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyProfile contextKey = "profile"
)

// publicPrefixes são rotas que dispensam token: leitura pública de rankings
// e emblemas, healthcheck e os endpoints internos (guardados por segredo próprio)
var publicPrefixes = []string{
	"/healthcheck",
	"/v1/leaderboards",
	"/v1/badges",
	"/v1/boosts/active",
	"/internal/",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyProfile, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
