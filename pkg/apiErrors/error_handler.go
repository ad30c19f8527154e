package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken  = "AUTH_001" // Token inválido
	ErrExpiredToken  = "AUTH_002" // Token expirado
	ErrInvalidSecret = "AUTH_003" // Segredo de cron inválido

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de ranking (3000-3999)
	ErrLeaderboardNotFound = "RNK_001" // Leaderboard não encontrado ou inativo

	// Erros de créditos (4000-4999)
	ErrInsufficientCredits = "CRD_001" // Saldo de créditos insuficiente
	ErrInvalidAmount       = "CRD_002" // Quantidade de créditos inválida

	// Erros de boosts (4500-4999)
	ErrBoostNotFound   = "BST_001" // Boost não encontrado
	ErrInvalidSlot     = "BST_002" // Tipo de slot inválido
	ErrInvalidDuration = "BST_003" // Duração de boost inválida
	ErrBoostRateLimit  = "BST_004" // Limite de boosts em 24h atingido
	ErrBoostCooldown   = "BST_005" // Livro com boost recente demais

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidSecret:       http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrLeaderboardNotFound: http.StatusNotFound,
	ErrInsufficientCredits: http.StatusBadRequest,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrBoostNotFound:       http.StatusNotFound,
	ErrInvalidSlot:         http.StatusBadRequest,
	ErrInvalidDuration:     http.StatusBadRequest,
	ErrBoostRateLimit:      http.StatusBadRequest,
	ErrBoostCooldown:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
