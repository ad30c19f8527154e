package crediting

import "errors"

var (
	// ErrInvalidAmount indica uma quantidade de créditos menor ou igual a zero
	ErrInvalidAmount = errors.New("quantidade de créditos deve ser maior que zero")

	// ErrInsufficientBalance indica saldo insuficiente para o débito solicitado
	ErrInsufficientBalance = errors.New("saldo de créditos insuficiente")
)
