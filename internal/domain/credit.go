package domain

import "time"

// TransactionType classifica uma transação do ledger de créditos
type TransactionType string

const (
	TransactionTypeEarn     TransactionType = "earn"
	TransactionTypeSpend    TransactionType = "spend"
	TransactionTypePurchase TransactionType = "purchase"
)

// TransactionSource identifica a origem de uma transação de créditos
type TransactionSource string

const (
	SourceDailyLogin        TransactionSource = "daily_login"
	SourceStreakBonus       TransactionSource = "streak_bonus"
	SourceFollowerMilestone TransactionSource = "follower_milestone"
	SourceBadgeAward        TransactionSource = "badge_award"
	SourceBoostSpend        TransactionSource = "boost_spend"
	SourceBoostRefund       TransactionSource = "boost_refund"
	SourcePurchase          TransactionSource = "purchase"
)

// Type deriva o tipo de transação a partir da origem
func (s TransactionSource) Type() TransactionType {
	switch s {
	case SourcePurchase:
		return TransactionTypePurchase
	case SourceBoostSpend:
		return TransactionTypeSpend
	default:
		return TransactionTypeEarn
	}
}

// PromoCredit é o agregado de créditos de um autor (uma linha por autor).
// Invariante: Balance = LifetimeEarned + LifetimePurchased - LifetimeSpent,
// e Balance nunca fica negativo. O log de transações é a fonte da verdade.
type PromoCredit struct {
	ProfileID         string    `json:"profile_id"`
	Balance           int       `json:"balance"`
	LifetimeEarned    int       `json:"lifetime_earned"`
	LifetimePurchased int       `json:"lifetime_purchased"`
	LifetimeSpent     int       `json:"lifetime_spent"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PromoTransaction é uma entrada append-only do ledger. Nunca é atualizada
// ou removida; correções são novas entradas compensatórias.
type PromoTransaction struct {
	ID                string            `json:"id"`
	ProfileID         string            `json:"profile_id"`
	Type              TransactionType   `json:"type"`
	Amount            int               `json:"amount"`
	Source            TransactionSource `json:"source"`
	Description       string            `json:"description"`
	RelatedEntityType *string           `json:"related_entity_type"`
	RelatedEntityID   *string           `json:"related_entity_id"`
	BalanceAfter      int               `json:"balance_after"`
	CreatedAt         time.Time         `json:"created_at"`
}

// RelatedEntity liga uma transação à entidade que a originou (ex.: um boost)
type RelatedEntity struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// DailyLoginResult é o resultado de uma reivindicação de login diário
type DailyLoginResult struct {
	Granted       bool `json:"granted"`
	DailyCredits  int  `json:"daily_credits"`
	StreakDays    int  `json:"streak_days"`
	StreakCredits int  `json:"streak_credits"`
}
