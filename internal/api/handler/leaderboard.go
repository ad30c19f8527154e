package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// GetLeaderboard retorna a página solicitada do snapshot mais recente de um leaderboard
func GetLeaderboard(service leaderboarding.LeaderboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slug do leaderboard não informado", nil)
			return
		}

		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 0)

		result, err := service.GetLeaderboard(slug, page, limit)
		if err != nil {
			if errors.Is(err, leaderboarding.ErrLeaderboardNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrLeaderboardNotFound, "Leaderboard não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar leaderboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar leaderboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resposta do leaderboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLeaderboardHistory lista os snapshots mais recentes de um leaderboard
func GetLeaderboardHistory(service leaderboarding.LeaderboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slug do leaderboard não informado", nil)
			return
		}

		limit := queryInt(r, "limit", 0)

		snapshots, err := service.GetHistory(slug, limit)
		if err != nil {
			if errors.Is(err, leaderboarding.ErrLeaderboardNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrLeaderboardNotFound, "Leaderboard não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar histórico do leaderboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logrus.Error("Erro ao enviar resposta do histórico:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// queryInt lê um parâmetro inteiro da query string com valor padrão
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
