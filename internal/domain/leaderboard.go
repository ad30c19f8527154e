package domain

import "time"

// TimeWindow define o período de agregação das métricas de um leaderboard
type TimeWindow string

const (
	TimeWindowWeekly  TimeWindow = "weekly"
	TimeWindowMonthly TimeWindow = "monthly"
	TimeWindowAllTime TimeWindow = "all_time"
)

// RankTrend é derivado na leitura comparando com o snapshot anterior (nunca persistido)
type RankTrend string

const (
	RankTrendRising  RankTrend = "rising"
	RankTrendFalling RankTrend = "falling"
	RankTrendStable  RankTrend = "stable"
	RankTrendNew     RankTrend = "new"
)

// Weights são os pesos de cada categoria de métrica (conceitualmente somam 1.0)
type Weights struct {
	Sales      float64 `json:"sales"`
	Engagement float64 `json:"engagement"`
	Community  float64 `json:"community"`
}

// DefaultWeights retorna os pesos padrão de um leaderboard
func DefaultWeights() Weights {
	return Weights{Sales: 0.4, Engagement: 0.3, Community: 0.3}
}

// Leaderboard é uma configuração de ranking. Imutável após a criação,
// exceto pela ativação/desativação. Criado por seed, nunca por usuários.
type Leaderboard struct {
	ID         string     `json:"id"`
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Category   *string    `json:"category"`
	TimeWindow TimeWindow `json:"time_window"`
	Weights    Weights    `json:"weights"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LeaderboardSnapshot é o resultado imutável de um cálculo de ranking
type LeaderboardSnapshot struct {
	ID              string    `json:"id"`
	LeaderboardID   string    `json:"leaderboard_id"`
	SnapshotDate    time.Time `json:"snapshot_date"`
	TimeWindowStart time.Time `json:"time_window_start"`
	TimeWindowEnd   time.Time `json:"time_window_end"`
	EntryCount      int       `json:"entry_count"`
}

// LeaderboardEntry é a posição de um autor dentro de um snapshot.
// PreviousRank e Trend são preenchidos na leitura (join com o snapshot anterior).
type LeaderboardEntry struct {
	SnapshotID      string     `json:"snapshot_id"`
	ProfileID       string     `json:"profile_id"`
	Rank            int        `json:"rank"`
	TotalScore      float64    `json:"total_score"`
	SalesScore      float64    `json:"sales_score"`
	EngagementScore float64    `json:"engagement_score"`
	CommunityScore  float64    `json:"community_score"`
	PreviousRank    *int       `json:"previous_rank"`
	Trend           RankTrend  `json:"trend,omitempty"`
	RawMetrics      RawMetrics `json:"raw_metrics"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LeaderboardEntryView é a entrada enriquecida com dados de exibição do autor
type LeaderboardEntryView struct {
	LeaderboardEntry
	PenName   string   `json:"pen_name"`
	AvatarURL *string  `json:"avatar_url"`
	Badges    []*Badge `json:"badges"`
}

// LeaderboardPage é a resposta paginada da leitura de um leaderboard
type LeaderboardPage struct {
	Leaderboard *Leaderboard            `json:"leaderboard"`
	Snapshot    *LeaderboardSnapshot    `json:"snapshot"`
	Entries     []*LeaderboardEntryView `json:"entries"`
	Page        int                     `json:"page"`
	Limit       int                     `json:"limit"`
	Total       int                     `json:"total"`
}
