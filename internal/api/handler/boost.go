package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/internal/usecases/boosting"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// CreateBoost cria um boost de livro debitando os créditos do autor
func CreateBoost(service boosting.BoostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		var request domain.CreateBoostRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", nil)
			return
		}

		if request.BookID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do livro não informado", nil)
			return
		}

		boost, err := service.CreateBoost(r.Context(), claims.ProfileID, &request)
		if err != nil {
			writeBoostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(boost); err != nil {
			logrus.Error("Erro ao enviar resposta do boost:", err)
		}
	}
}

// CancelBoost cancela um boost do autor com reembolso proporcional
func CancelBoost(service boosting.BoostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		boostID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if boostID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do boost não informado", nil)
			return
		}

		result, err := service.CancelBoost(r.Context(), claims.ProfileID, boostID)
		if err != nil {
			writeBoostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resposta do cancelamento:", err)
		}
	}
}

// ListActiveBoosts lista os boosts ativos de um slot com a pontuação de exibição
func ListActiveBoosts(service boosting.BoostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot := domain.SlotType(r.URL.Query().Get("slot"))
		if slot == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slot não informado", nil)
			return
		}

		boosts, err := service.ListActiveBoosts(slot)
		if err != nil {
			writeBoostError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(boosts); err != nil {
			logrus.Error("Erro ao enviar resposta dos boosts ativos:", err)
		}
	}
}

// writeBoostError traduz os erros do serviço de boosts para a resposta da API
func writeBoostError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, boosting.ErrInvalidSlotType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSlot, err.Error(), nil)
	case errors.Is(err, boosting.ErrInvalidDuration):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDuration, err.Error(), nil)
	case errors.Is(err, boosting.ErrRateLimitExceeded):
		apiErrors.WriteError(w, apiErrors.ErrBoostRateLimit, err.Error(), nil)
	case errors.Is(err, boosting.ErrBookCooldown):
		apiErrors.WriteError(w, apiErrors.ErrBoostCooldown, err.Error(), nil)
	case errors.Is(err, boosting.ErrInsufficientCredits):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientCredits, err.Error(), nil)
	case errors.Is(err, boosting.ErrBoostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBoostNotFound, err.Error(), nil)
	default:
		logrus.Error("Erro na operação de boost:", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na operação de boost", nil)
	}
}
