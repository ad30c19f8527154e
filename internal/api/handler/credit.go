package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/usecases/crediting"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// claimCreditsRequest é o payload do resgate de créditos do autor
type claimCreditsRequest struct {
	Action string `json:"action"`
}

const claimActionDailyLogin = "daily_login"

// GetCredits retorna o saldo de créditos promocionais do autor autenticado
func GetCredits(service crediting.CreditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		balance, err := service.GetBalance(r.Context(), claims.ProfileID)
		if err != nil {
			logrus.Error("Erro ao buscar saldo de créditos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar saldo de créditos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(balance); err != nil {
			logrus.Error("Erro ao enviar resposta do saldo:", err)
		}
	}
}

// ClaimCredits processa o resgate do bônus de login diário
func ClaimCredits(service crediting.CreditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		var request claimCreditsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", nil)
			return
		}

		if request.Action != claimActionDailyLogin {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação de resgate desconhecida", nil)
			return
		}

		result, err := service.ClaimDailyLogin(r.Context(), claims.ProfileID)
		if err != nil {
			logrus.Error("Erro ao resgatar bônus de login diário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resgatar bônus", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error("Erro ao enviar resposta do resgate:", err)
		}
	}
}

// GetCreditHistory retorna o extrato de transações de créditos do autor
func GetCreditHistory(service crediting.CreditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := profileFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Autor não autenticado", nil)
			return
		}

		limit := queryInt(r, "limit", 0)
		offset := queryInt(r, "offset", 0)

		history, err := service.GetHistory(claims.ProfileID, limit, offset)
		if err != nil {
			logrus.Error("Erro ao buscar extrato de créditos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar extrato de créditos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logrus.Error("Erro ao enviar resposta do extrato:", err)
		}
	}
}
