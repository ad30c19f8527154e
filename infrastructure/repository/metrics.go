package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

const (
	salesEventsTable       = "sales_events se"
	authorFollowsTable     = "author_follows af"
	communityPostsTable    = "community_posts p"
	communityCommentsTable = "community_comments c"
)

// MetricsRepository lê a atividade bruta produzida pelos subsistemas externos
// (ingestão de vendas e serviço de comunidade). Somente leitura.
type MetricsRepository interface {
	SumSalesQuantity(profileID string, window domain.TimeRange, category string) (int, error)
	CountFollowsInWindow(profileID string, window domain.TimeRange) (int, error)
	CountFollowers(profileID string) (int, error)
	PostStats(profileID string, window domain.TimeRange) (postCount, likesAndComments int, err error)
	CountCommentsGiven(profileID string, window domain.TimeRange) (int, error)
}

type metricsRepository struct {
	conn *postgres.Connection
}

func NewMetricsRepository(conn *postgres.Connection) MetricsRepository {
	return &metricsRepository{
		conn: conn,
	}
}

// SumSalesQuantity soma as vendas do autor na janela. A categoria (gênero do
// livro, carimbada no evento pela ingestão) restringe a soma quando informada.
func (r *metricsRepository) SumSalesQuantity(profileID string, window domain.TimeRange, category string) (int, error) {
	builder := squirrel.
		Select("COALESCE(SUM(se.quantity), 0)").
		From(salesEventsTable).
		Where(squirrel.Eq{"se.profile_id": profileID}).
		Where(squirrel.GtOrEq{"se.occurred_at": window.Start}).
		Where(squirrel.LtOrEq{"se.occurred_at": window.End})

	if category != "" {
		builder = builder.Where(squirrel.Eq{"se.category": category})
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar vendas: %w", err)
	}

	return total, nil
}

func (r *metricsRepository) CountFollowsInWindow(profileID string, window domain.TimeRange) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(authorFollowsTable).
		Where(squirrel.Eq{"af.followed_profile_id": profileID}).
		Where(squirrel.GtOrEq{"af.created_at": window.Start}).
		Where(squirrel.LtOrEq{"af.created_at": window.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar novos seguidores: %w", err)
	}

	return count, nil
}

func (r *metricsRepository) CountFollowers(profileID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(authorFollowsTable).
		Where(squirrel.Eq{"af.followed_profile_id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar seguidores: %w", err)
	}

	return count, nil
}

// PostStats conta os posts não deletados criados na janela e soma seus
// contadores acumulados de likes/comentários. Os contadores são lidos no
// valor atual, não no valor do fechamento da janela (aproximação do produto).
func (r *metricsRepository) PostStats(profileID string, window domain.TimeRange) (int, int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(p.like_count + p.comment_count), 0)").
		From(communityPostsTable).
		Where(squirrel.Eq{"p.profile_id": profileID, "p.is_deleted": false}).
		Where(squirrel.GtOrEq{"p.created_at": window.Start}).
		Where(squirrel.LtOrEq{"p.created_at": window.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var postCount, likesAndComments int
	if err := r.conn.QueryRow(query, args...).Scan(&postCount, &likesAndComments); err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("erro ao agregar posts: %w", err)
	}

	return postCount, likesAndComments, nil
}

func (r *metricsRepository) CountCommentsGiven(profileID string, window domain.TimeRange) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(communityCommentsTable).
		Where(squirrel.Eq{"c.profile_id": profileID}).
		Where(squirrel.GtOrEq{"c.created_at": window.Start}).
		Where(squirrel.LtOrEq{"c.created_at": window.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar comentários dados: %w", err)
	}

	return count, nil
}
