package handler

import (
	"net/http"

	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/pkg/middleware"
)

// profileFromContext extrai os claims do autor autenticado injetados pelo
// middleware de autenticação
func profileFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyProfile).(*domain.Claims)
	if !ok || claims == nil || claims.ProfileID == "" {
		return nil, false
	}

	return claims, true
}
