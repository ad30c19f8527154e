package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

const (
	boostedBooksTable = "boosted_books bb"
	slotPricingTable  = "slot_pricing sp"
)

type BoostRepository interface {
	GetSlotPricing(slot domain.SlotType) (*domain.SlotPricing, error)
	CreateWithSpend(ctx context.Context, boost *domain.BoostedBook) (*domain.PromoTransaction, error)
	GetByID(boostID string) (*domain.BoostedBook, error)
	CancelWithRefund(ctx context.Context, boost *domain.BoostedBook, refund int) (bool, *domain.PromoTransaction, error)
	CountCreatedSince(profileID string, since time.Time) (int, error)
	HasRecentBoostForBook(bookID string, since time.Time) (bool, error)
	ActivateDue(now time.Time) (int64, error)
	CompleteDue(now time.Time) (int64, error)
	ListActiveBySlot(slot domain.SlotType) ([]*domain.BoostedBook, error)
}

type boostRepository struct {
	conn *postgres.Connection
}

func NewBoostRepository(conn *postgres.Connection) BoostRepository {
	return &boostRepository{
		conn: conn,
	}
}

func (r *boostRepository) GetSlotPricing(slot domain.SlotType) (*domain.SlotPricing, error) {
	query, args, err := squirrel.
		Select("sp.slot_type", "sp.credits_per_24hr", "sp.boost_multiplier").
		From(slotPricingTable).
		Where(squirrel.Eq{"sp.slot_type": slot}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	pricing := &domain.SlotPricing{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&pricing.SlotType, &pricing.CreditsPer24hr, &pricing.BoostMultiplier)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear preço do slot: %w", err)
	}

	return pricing, nil
}

// CreateWithSpend debita os créditos e insere o boost na mesma transação.
// Retorna (nil, nil) quando o saldo é insuficiente: nada é persistido.
func (r *boostRepository) CreateWithSpend(ctx context.Context, boost *domain.BoostedBook) (*domain.PromoTransaction, error) {
	var transaction *domain.PromoTransaction

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		related := &domain.RelatedEntity{Type: "boosted_book", ID: boost.ID}
		description := fmt.Sprintf("Boost do livro %s no slot %s", boost.BookID, boost.SlotType)

		spend, err := spendCreditsTx(tx, boost.ProfileID, boost.CreditCost, domain.SourceBoostSpend, description, related)
		if err != nil {
			return err
		}

		if spend == nil {
			// Saldo insuficiente: aborta sem persistir nada
			return nil
		}

		query, args, err := squirrel.
			Insert("boosted_books").
			Columns(
				"id",
				"profile_id",
				"book_id",
				"slot_type",
				"start_time",
				"end_time",
				"credit_cost",
				"status",
				"impressions",
				"clicks",
				"created_at",
			).
			Values(
				boost.ID,
				boost.ProfileID,
				boost.BookID,
				boost.SlotType,
				boost.StartTime,
				boost.EndTime,
				boost.CreditCost,
				boost.Status,
				boost.Impressions,
				boost.Clicks,
				boost.CreatedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao inserir boost: %w", err)
		}

		transaction = spend
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *boostRepository) GetByID(boostID string) (*domain.BoostedBook, error) {
	query, args, err := selectBoosts().
		Where(squirrel.Eq{"bb.id": boostID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	boost := &domain.BoostedBook{}
	err = scanBoost(row.Scan, boost)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear boost: %w", err)
	}

	return boost, nil
}

// CancelWithRefund transiciona o boost para cancelled e credita o reembolso
// na mesma transação. A cláusula de status no UPDATE garante que estados
// terminais nunca transicionam, mesmo sob concorrência. Retorna cancelled
// igual a false quando o boost já estava em estado terminal.
func (r *boostRepository) CancelWithRefund(ctx context.Context, boost *domain.BoostedBook, refund int) (bool, *domain.PromoTransaction, error) {
	var (
		cancelled   bool
		transaction *domain.PromoTransaction
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(
			`UPDATE boosted_books SET status = $1 WHERE id = $2 AND profile_id = $3 AND status IN ($4, $5)`,
			domain.BoostStatusCancelled,
			boost.ID,
			boost.ProfileID,
			domain.BoostStatusScheduled,
			domain.BoostStatusActive,
		)
		if err != nil {
			return fmt.Errorf("erro ao cancelar boost: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if affected == 0 {
			return nil
		}

		cancelled = true

		if refund <= 0 {
			return nil
		}

		related := &domain.RelatedEntity{Type: "boosted_book", ID: boost.ID}
		description := fmt.Sprintf("Reembolso proporcional do boost %s", boost.ID)

		transaction, err = earnCreditsTx(tx, boost.ProfileID, refund, domain.SourceBoostRefund, description, related)
		return err
	})
	if err != nil {
		return false, nil, err
	}

	return cancelled, transaction, nil
}

// CountCreatedSince conta os boosts criados pelo autor desde o instante
// dado, para o limite diário.
func (r *boostRepository) CountCreatedSince(profileID string, since time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(boostedBooksTable).
		Where(squirrel.Eq{"bb.profile_id": profileID}).
		Where(squirrel.GtOrEq{"bb.created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar boosts: %w", err)
	}

	return count, nil
}

// HasRecentBoostForBook detecta um boost do mesmo livro com end_time dentro
// da janela de cooldown.
func (r *boostRepository) HasRecentBoostForBook(bookID string, since time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(boostedBooksTable).
		Where(squirrel.Eq{"bb.book_id": bookID}).
		Where(squirrel.GtOrEq{"bb.end_time": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar cooldown do livro: %w", err)
	}

	return count > 0, nil
}

// ActivateDue promove boosts scheduled cujo start_time chegou. Idempotente:
// cada linha cruza a borda no máximo uma vez.
func (r *boostRepository) ActivateDue(now time.Time) (int64, error) {
	return r.transitionDue(
		domain.BoostStatusScheduled,
		domain.BoostStatusActive,
		"start_time",
		now,
	)
}

// CompleteDue conclui boosts active cujo end_time passou. Idempotente.
func (r *boostRepository) CompleteDue(now time.Time) (int64, error) {
	return r.transitionDue(
		domain.BoostStatusActive,
		domain.BoostStatusCompleted,
		"end_time",
		now,
	)
}

func (r *boostRepository) transitionDue(from, to domain.BoostStatus, timeColumn string, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("boosted_books").
		Set("status", to).
		Where(squirrel.Eq{"status": from}).
		Where(squirrel.LtOrEq{timeColumn: now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao transicionar boosts: %w", err)
	}

	return result.RowsAffected()
}

func (r *boostRepository) ListActiveBySlot(slot domain.SlotType) ([]*domain.BoostedBook, error) {
	query, args, err := selectBoosts().
		Where(squirrel.Eq{"bb.slot_type": slot, "bb.status": domain.BoostStatusActive}).
		OrderBy("bb.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	boosts := make([]*domain.BoostedBook, 0)
	for rows.Next() {
		boost := &domain.BoostedBook{}
		if err := scanBoost(rows.Scan, boost); err != nil {
			return nil, fmt.Errorf("erro ao escanear boost: %w", err)
		}
		boosts = append(boosts, boost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return boosts, nil
}

func selectBoosts() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"bb.id",
			"bb.profile_id",
			"bb.book_id",
			"bb.slot_type",
			"bb.start_time",
			"bb.end_time",
			"bb.credit_cost",
			"bb.status",
			"bb.impressions",
			"bb.clicks",
			"bb.created_at",
		).
		From(boostedBooksTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanBoost(scan func(...interface{}) error, boost *domain.BoostedBook) error {
	return scan(
		&boost.ID,
		&boost.ProfileID,
		&boost.BookID,
		&boost.SlotType,
		&boost.StartTime,
		&boost.EndTime,
		&boost.CreditCost,
		&boost.Status,
		&boost.Impressions,
		&boost.Clicks,
		&boost.CreatedAt,
	)
}
