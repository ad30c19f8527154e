package domain

import "time"

// SlotType é o espaço de UI onde um boost é exibido
type SlotType string

const (
	SlotTypeExplore            SlotType = "explore"
	SlotTypeCommunityFeed      SlotType = "community_feed"
	SlotTypeLeaderboardSidebar SlotType = "leaderboard_sidebar"
)

// ValidSlotType valida um slot recebido da API
func ValidSlotType(s SlotType) bool {
	switch s {
	case SlotTypeExplore, SlotTypeCommunityFeed, SlotTypeLeaderboardSidebar:
		return true
	}
	return false
}

// BoostStatus é o estado do ciclo de vida de um boost.
// Máquina de estados: scheduled → active → completed (varredura),
// com escape scheduled|active → cancelled (usuário). Estados terminais
// são imutáveis.
type BoostStatus string

const (
	BoostStatusScheduled BoostStatus = "scheduled"
	BoostStatusActive    BoostStatus = "active"
	BoostStatusCompleted BoostStatus = "completed"
	BoostStatusCancelled BoostStatus = "cancelled"
)

// Terminal indica se o status não admite mais transições
func (s BoostStatus) Terminal() bool {
	return s == BoostStatusCompleted || s == BoostStatusCancelled
}

// SlotPricing é o preço de um slot por 24 horas (configuração seed)
type SlotPricing struct {
	SlotType        SlotType `json:"slot_type"`
	CreditsPer24hr  int      `json:"credits_per_24hr"`
	BoostMultiplier float64  `json:"boost_multiplier"`
}

// BoostedBook é um posicionamento promocional pago e limitado no tempo.
// Invariante: EndTime > StartTime. Impressions e Clicks são acumulados
// por instrumentação externa.
type BoostedBook struct {
	ID          string      `json:"id"`
	ProfileID   string      `json:"profile_id"`
	BookID      string      `json:"book_id"`
	SlotType    SlotType    `json:"slot_type"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	CreditCost  int         `json:"credit_cost"`
	Status      BoostStatus `json:"status"`
	Impressions int         `json:"impressions"`
	Clicks      int         `json:"clicks"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CreateBoostRequest é o payload de criação de um boost
type CreateBoostRequest struct {
	BookID        string     `json:"book_id"`
	SlotType      SlotType   `json:"slot_type"`
	DurationHours int        `json:"duration_hours"`
	StartTime     *time.Time `json:"start_time"`
}

// BoostCancelResult reporta o resultado de um cancelamento
type BoostCancelResult struct {
	BoostID string      `json:"boost_id"`
	Status  BoostStatus `json:"status"`
	Refund  int         `json:"refund"`
}

// BoostView é um boost enriquecido com a pontuação de exibição
// (score do autor com multiplicador de slot aplicado)
type BoostView struct {
	BoostedBook
	DisplayScore float64 `json:"display_score"`
}
