package domain

import "time"

// BadgeTier é a camada cosmética de um badge
type BadgeTier string

const (
	BadgeTierBronze   BadgeTier = "bronze"
	BadgeTierSilver   BadgeTier = "silver"
	BadgeTierGold     BadgeTier = "gold"
	BadgeTierPlatinum BadgeTier = "platinum"
)

// Slugs dos badges de ranking semanal (configuração estática, criada por seed)
const (
	BadgeSlugTop3Weekly   = "top-3-weekly"
	BadgeSlugNumberOne    = "number-1"
	BadgeSlugTop10Weekly  = "top-10-weekly"
	BadgeSlugRisingAuthor = "rising-author"
)

// Badge é uma definição estática de badge
type Badge struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Tier          BadgeTier `json:"tier"`
	IsTimeLimited bool      `json:"is_time_limited"`
	DurationDays  int       `json:"duration_days"`
	CreditReward  int       `json:"credit_reward"`
	IsActive      bool      `json:"is_active"`
}

// AwardContext é o payload de auditoria de uma concessão de badge
type AwardContext struct {
	SnapshotID        string `json:"snapshot_id,omitempty"`
	Rank              int    `json:"rank,omitempty"`
	PreviousRank      *int   `json:"previous_rank,omitempty"`
	FollowerMilestone int    `json:"follower_milestone,omitempty"`
}

// AuthorBadge é uma instância de concessão de badge a um autor.
// Invariante: no máximo uma concessão ativa por par (profile_id, badge_id).
// Mutado apenas pela varredura de expiração.
type AuthorBadge struct {
	ID           string       `json:"id"`
	ProfileID    string       `json:"profile_id"`
	BadgeID      string       `json:"badge_id"`
	AwardedAt    time.Time    `json:"awarded_at"`
	AwardContext AwardContext `json:"award_context"`
	ExpiresAt    *time.Time   `json:"expires_at"`
	IsActive     bool         `json:"is_active"`
}

// AuthorBadgeView é a concessão enriquecida com a definição do badge
type AuthorBadgeView struct {
	AuthorBadge
	Badge Badge `json:"badge"`
}

// FollowerMilestone liga um limiar de seguidores a um badge e seu bônus de créditos
type FollowerMilestone struct {
	Threshold   int
	BadgeSlug   string
	CreditBonus int
}
