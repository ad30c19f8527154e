package domain

import "time"

// TimeRange é o intervalo [Start, End] sobre o qual as métricas brutas são agregadas
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days retorna a duração do intervalo em dias (fração incluída)
func (t TimeRange) Days() float64 {
	return t.End.Sub(t.Start).Hours() / 24
}

// SalesMetrics são as métricas brutas de vendas de um autor na janela
type SalesMetrics struct {
	TotalSales int     `json:"total_sales"`
	Velocity   float64 `json:"velocity"`
}

// EngagementMetrics são as métricas brutas de seguidores de um autor na janela
type EngagementMetrics struct {
	FollowerGrowth   int     `json:"follower_growth"`
	CurrentFollowers int     `json:"current_followers"`
	GrowthRate       float64 `json:"growth_rate"`
}

// CommunityMetrics são as métricas brutas de atividade comunitária na janela.
// LikesAndComments lê os contadores acumulados atuais dos posts, não o valor
// no fechamento da janela (aproximação herdada do produto).
type CommunityMetrics struct {
	PostCount        int     `json:"post_count"`
	LikesAndComments int     `json:"likes_and_comments"`
	CommentsGiven    int     `json:"comments_given"`
	EngagementRate   float64 `json:"engagement_rate"`
}

// RawMetrics agrupa os três pacotes de métricas brutas de um autor
type RawMetrics struct {
	Sales      SalesMetrics      `json:"sales"`
	Engagement EngagementMetrics `json:"engagement"`
	Community  CommunityMetrics  `json:"community"`
}

// IsZero indica ausência total de sinal pontuável: sem vendas, sem base nem
// crescimento de seguidores e sem atividade comunitária na janela
func (m RawMetrics) IsZero() bool {
	return m.Sales.TotalSales == 0 &&
		m.Engagement.FollowerGrowth == 0 &&
		m.Engagement.CurrentFollowers == 0 &&
		m.Community.PostCount == 0 &&
		m.Community.CommentsGiven == 0
}

// RankingInput é a entrada de um autor para o cálculo de ranking
type RankingInput struct {
	ProfileID string
	Metrics   RawMetrics
}

// RankingOutput é o resultado pontuado de um autor, antes da persistência
type RankingOutput struct {
	ProfileID       string  `json:"profile_id"`
	SalesScore      float64 `json:"sales_score"`
	EngagementScore float64 `json:"engagement_score"`
	CommunityScore  float64 `json:"community_score"`
	TotalScore      float64 `json:"total_score"`
	Metrics         RawMetrics
}
