package boosting

import "errors"

var (
	// ErrInvalidSlotType indica um slot desconhecido ou sem preço configurado
	ErrInvalidSlotType = errors.New("tipo de slot inválido")

	// ErrInvalidDuration indica uma duração fora da faixa permitida
	ErrInvalidDuration = errors.New("duração do boost inválida")

	// ErrRateLimitExceeded indica que o autor atingiu o limite de boosts em 24h
	ErrRateLimitExceeded = errors.New("limite de boosts em 24 horas atingido")

	// ErrBookCooldown indica que o mesmo livro teve boost recente demais
	ErrBookCooldown = errors.New("este livro teve um boost nas últimas 24 horas")

	// ErrInsufficientCredits indica saldo insuficiente para pagar o boost
	ErrInsufficientCredits = errors.New("créditos insuficientes para o boost")

	// ErrBoostNotFound indica que o boost não existe ou não pertence ao autor
	ErrBoostNotFound = errors.New("boost não encontrado")
)
