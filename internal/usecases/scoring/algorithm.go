// Package scoring implementa o algoritmo puro de pontuação e ranking dos
// autores. Não tem efeitos colaterais nem dependências de repositórios.
package scoring

import (
	"math"
	"sort"

	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

// A normalização usa escala logarítmica porque velocidade de vendas e
// contagem de seguidores variam ordens de magnitude entre autores.
const (
	// MaxSalesVelocity é a velocidade de vendas que corresponde à nota 100
	MaxSalesVelocity = 100.0

	// MaxFollowerReference é a contagem de seguidores que corresponde à nota 100
	MaxFollowerReference = 10000.0

	// PostCountReference é a quantidade de posts que corresponde à nota 100
	PostCountReference = 20.0

	// CommentsGivenReference é a quantidade de comentários dados que corresponde à nota 100
	CommentsGivenReference = 50.0

	// EngagementRateFactor converte a taxa de engajamento em nota
	EngagementRateFactor = 10.0

	// MaxBoostMultiplier limita o multiplicador de exibição a 2x a nota base,
	// para que uma única compra não domine a lista inteira
	MaxBoostMultiplier = 2.0
)

// SalesScore normaliza a velocidade de vendas para [0, 100]
func SalesScore(m domain.SalesMetrics) float64 {
	normalized := 100 * math.Log(m.Velocity+1) / math.Log(MaxSalesVelocity+1)
	return utils.Clamp(normalized, 0, 100)
}

// EngagementScore combina 70% de taxa de crescimento com 30% de contagem
// absoluta de seguidores, ambas normalizadas para [0, 100]
func EngagementScore(m domain.EngagementMetrics) float64 {
	growthScore := math.Min(100, m.GrowthRate*100)

	followerScore := utils.Clamp(
		100*math.Log(float64(m.CurrentFollowers)+1)/math.Log(MaxFollowerReference+1),
		0, 100,
	)

	return 0.7*growthScore + 0.3*followerScore
}

// CommunityScore combina 40% de volume de posts, 40% de taxa de engajamento
// e 20% de participação (comentários dados a outros autores)
func CommunityScore(m domain.CommunityMetrics) float64 {
	postScore := math.Min(100, float64(m.PostCount)/PostCountReference*100)
	rateScore := math.Min(100, m.EngagementRate*EngagementRateFactor)
	participationScore := math.Min(100, float64(m.CommentsGiven)/CommentsGivenReference*100)

	return 0.4*postScore + 0.4*rateScore + 0.2*participationScore
}

// Score aplica os pesos do leaderboard sobre as notas normalizadas e produz
// as pontuações ponderadas por componente mais o total, com duas casas decimais
func Score(metrics domain.RawMetrics, weights domain.Weights) domain.RankingOutput {
	salesScore := utils.RoundWithTwoDecimalPlace(SalesScore(metrics.Sales) * weights.Sales)
	engagementScore := utils.RoundWithTwoDecimalPlace(EngagementScore(metrics.Engagement) * weights.Engagement)
	communityScore := utils.RoundWithTwoDecimalPlace(CommunityScore(metrics.Community) * weights.Community)

	return domain.RankingOutput{
		SalesScore:      salesScore,
		EngagementScore: engagementScore,
		CommunityScore:  communityScore,
		TotalScore:      utils.RoundWithTwoDecimalPlace(salesScore + engagementScore + communityScore),
		Metrics:         metrics,
	}
}

// CalculateRankings pontua todos os autores e retorna a lista ordenada por
// pontuação total decrescente. Empates preservam a ordem de entrada.
func CalculateRankings(inputs []domain.RankingInput, weights domain.Weights) []domain.RankingOutput {
	outputs := make([]domain.RankingOutput, 0, len(inputs))

	for _, input := range inputs {
		output := Score(input.Metrics, weights)
		output.ProfileID = input.ProfileID
		outputs = append(outputs, output)
	}

	sort.SliceStable(outputs, func(i, j int) bool {
		return outputs[i].TotalScore > outputs[j].TotalScore
	})

	return outputs
}

// ApplyBoostMultiplier aplica o multiplicador de slot sobre uma pontuação
// para ordenação de exibição. Nunca é gravado de volta no total_score.
func ApplyBoostMultiplier(score, multiplier float64) float64 {
	boosted := score * multiplier
	return math.Min(boosted, score*MaxBoostMultiplier)
}
