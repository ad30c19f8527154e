package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

const (
	badgesTable       = "badges b"
	authorBadgesTable = "author_badges ab"
)

type BadgeRepository interface {
	GetBySlug(slug string) (*domain.Badge, error)
	ListActive() ([]*domain.Badge, error)
	GetActiveAward(profileID, badgeID string) (*domain.AuthorBadge, error)
	AwardWithCredit(ctx context.Context, award *domain.AuthorBadge, creditAmount int, source domain.TransactionSource, description string) (*domain.PromoTransaction, error)
	ListAwards(profileID string) ([]*domain.AuthorBadgeView, error)
	ListActiveBadgesForProfiles(profileIDs []string) (map[string][]*domain.Badge, error)
	ExpireDue(now time.Time) (int64, error)
}

type badgeRepository struct {
	conn *postgres.Connection
}

func NewBadgeRepository(conn *postgres.Connection) BadgeRepository {
	return &badgeRepository{
		conn: conn,
	}
}

func (r *badgeRepository) GetBySlug(slug string) (*domain.Badge, error) {
	query, args, err := selectBadges().
		Where(squirrel.Eq{"b.slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	badge := &domain.Badge{}
	err = scanBadge(row.Scan, badge)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear badge: %w", err)
	}

	return badge, nil
}

func (r *badgeRepository) ListActive() ([]*domain.Badge, error) {
	query, args, err := selectBadges().
		Where(squirrel.Eq{"b.is_active": true}).
		OrderBy("b.tier ASC, b.slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	badges := make([]*domain.Badge, 0)
	for rows.Next() {
		badge := &domain.Badge{}
		if err := scanBadge(rows.Scan, badge); err != nil {
			return nil, fmt.Errorf("erro ao escanear badge: %w", err)
		}
		badges = append(badges, badge)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return badges, nil
}

// GetActiveAward busca uma concessão ativa do par (autor, badge). É a
// verificação obrigatória antes de conceder, para não repagar créditos.
func (r *badgeRepository) GetActiveAward(profileID, badgeID string) (*domain.AuthorBadge, error) {
	query, args, err := squirrel.
		Select("ab.id", "ab.profile_id", "ab.badge_id", "ab.awarded_at", "ab.award_context", "ab.expires_at", "ab.is_active").
		From(authorBadgesTable).
		Where(squirrel.Eq{"ab.profile_id": profileID, "ab.badge_id": badgeID, "ab.is_active": true}).
		OrderBy("ab.awarded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	award, err := scanAuthorBadgeRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear concessão: %w", err)
	}

	return award, nil
}

// AwardWithCredit insere a concessão e o ganho de créditos associado em uma
// única transação: nunca existe crédito sem badge, nem badge sem crédito.
func (r *badgeRepository) AwardWithCredit(
	ctx context.Context,
	award *domain.AuthorBadge,
	creditAmount int,
	source domain.TransactionSource,
	description string,
) (*domain.PromoTransaction, error) {
	var transaction *domain.PromoTransaction

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		awardContext, err := json.Marshal(award.AwardContext)
		if err != nil {
			return fmt.Errorf("erro ao serializar contexto da concessão: %w", err)
		}

		query, args, err := squirrel.
			Insert("author_badges").
			Columns("id", "profile_id", "badge_id", "awarded_at", "award_context", "expires_at", "is_active").
			Values(
				award.ID,
				award.ProfileID,
				award.BadgeID,
				award.AwardedAt,
				awardContext,
				award.ExpiresAt,
				award.IsActive,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir concessão de badge: %w", err)
		}

		if creditAmount <= 0 {
			return nil
		}

		related := &domain.RelatedEntity{Type: "author_badge", ID: award.ID}
		transaction, err = earnCreditsTx(tx, award.ProfileID, creditAmount, source, description, related)
		return err
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *badgeRepository) ListAwards(profileID string) ([]*domain.AuthorBadgeView, error) {
	query, args, err := squirrel.
		Select(
			"ab.id", "ab.profile_id", "ab.badge_id", "ab.awarded_at", "ab.award_context", "ab.expires_at", "ab.is_active",
			"b.id", "b.slug", "b.name", "b.tier", "b.is_time_limited", "b.duration_days", "b.credit_reward", "b.is_active",
		).
		From(authorBadgesTable).
		Join("badges b ON ab.badge_id = b.id").
		Where(squirrel.Eq{"ab.profile_id": profileID, "ab.is_active": true}).
		OrderBy("ab.awarded_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	views := make([]*domain.AuthorBadgeView, 0)
	for rows.Next() {
		view := &domain.AuthorBadgeView{}
		var awardContext []byte

		err := rows.Scan(
			&view.ID,
			&view.ProfileID,
			&view.BadgeID,
			&view.AwardedAt,
			&awardContext,
			&view.ExpiresAt,
			&view.IsActive,
			&view.Badge.ID,
			&view.Badge.Slug,
			&view.Badge.Name,
			&view.Badge.Tier,
			&view.Badge.IsTimeLimited,
			&view.Badge.DurationDays,
			&view.Badge.CreditReward,
			&view.Badge.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear concessão: %w", err)
		}

		if err := json.Unmarshal(awardContext, &view.AwardContext); err != nil {
			return nil, fmt.Errorf("erro ao desserializar contexto da concessão: %w", err)
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return views, nil
}

// ListActiveBadgesForProfiles retorna os badges ativos de um conjunto de
// autores, para enriquecer a leitura de leaderboards.
func (r *badgeRepository) ListActiveBadgesForProfiles(profileIDs []string) (map[string][]*domain.Badge, error) {
	if len(profileIDs) == 0 {
		return map[string][]*domain.Badge{}, nil
	}

	query, args, err := squirrel.
		Select(
			"ab.profile_id",
			"b.id", "b.slug", "b.name", "b.tier", "b.is_time_limited", "b.duration_days", "b.credit_reward", "b.is_active",
		).
		From(authorBadgesTable).
		Join("badges b ON ab.badge_id = b.id").
		Where(squirrel.Eq{"ab.profile_id": profileIDs, "ab.is_active": true}).
		OrderBy("ab.awarded_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	badgesByProfile := make(map[string][]*domain.Badge)
	for rows.Next() {
		var profileID string
		badge := &domain.Badge{}

		err := rows.Scan(
			&profileID,
			&badge.ID,
			&badge.Slug,
			&badge.Name,
			&badge.Tier,
			&badge.IsTimeLimited,
			&badge.DurationDays,
			&badge.CreditReward,
			&badge.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear badge: %w", err)
		}

		badgesByProfile[profileID] = append(badgesByProfile[profileID], badge)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return badgesByProfile, nil
}

// ExpireDue desativa as concessões com expires_at vencido. Idempotente.
func (r *badgeRepository) ExpireDue(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("author_badges").
		Set("is_active", false).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{"expires_at": nil}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao expirar badges: %w", err)
	}

	return result.RowsAffected()
}

func selectBadges() squirrel.SelectBuilder {
	return squirrel.
		Select("b.id", "b.slug", "b.name", "b.tier", "b.is_time_limited", "b.duration_days", "b.credit_reward", "b.is_active").
		From(badgesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanBadge(scan func(...interface{}) error, badge *domain.Badge) error {
	return scan(
		&badge.ID,
		&badge.Slug,
		&badge.Name,
		&badge.Tier,
		&badge.IsTimeLimited,
		&badge.DurationDays,
		&badge.CreditReward,
		&badge.IsActive,
	)
}

func scanAuthorBadgeRow(row *sql.Row) (*domain.AuthorBadge, error) {
	award := &domain.AuthorBadge{}
	var awardContext []byte

	err := row.Scan(
		&award.ID,
		&award.ProfileID,
		&award.BadgeID,
		&award.AwardedAt,
		&awardContext,
		&award.ExpiresAt,
		&award.IsActive,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(awardContext, &award.AwardContext); err != nil {
		return nil, err
	}

	return award, nil
}
