package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// ListBadges retorna o catálogo de emblemas ativos da plataforma
func ListBadges(service badging.BadgeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badges, err := service.ListBadges()
		if err != nil {
			logrus.Error("Erro ao buscar catálogo de emblemas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar emblemas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(badges); err != nil {
			logrus.Error("Erro ao enviar resposta dos emblemas:", err)
		}
	}
}

// GetProfileBadges retorna as concessões de emblemas do autor autenticado
func GetProfileBadges(service badging.BadgeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		awards, err := service.ListAuthorBadges(claims.ProfileID)
		if err != nil {
			logrus.Error("Erro ao buscar emblemas do autor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar emblemas do autor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(awards); err != nil {
			logrus.Error("Erro ao enviar resposta dos emblemas do autor:", err)
		}
	}
}
