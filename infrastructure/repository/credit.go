// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

const (
	promoCreditsTable      = "promo_credits pc"
	promoTransactionsTable = "promo_transactions pt"
)

type CreditRepository interface {
	GetBalance(ctx context.Context, profileID string) (*domain.PromoCredit, error)
	AddCredits(ctx context.Context, profileID string, amount int, source domain.TransactionSource, description string, related *domain.RelatedEntity) (*domain.PromoTransaction, error)
	DeductCredits(ctx context.Context, profileID string, amount int, source domain.TransactionSource, description string, related *domain.RelatedEntity) (*domain.PromoTransaction, error)
	ListTransactions(profileID string, limit, offset int) ([]*domain.PromoTransaction, error)
	LastBySourceSince(profileID string, source domain.TransactionSource, since time.Time) (*domain.PromoTransaction, error)
	ListBySource(profileID string, source domain.TransactionSource, limit int) ([]*domain.PromoTransaction, error)
}

type creditRepository struct {
	conn *postgres.Connection
}

func NewCreditRepository(conn *postgres.Connection) CreditRepository {
	return &creditRepository{
		conn: conn,
	}
}

func (r *creditRepository) GetBalance(ctx context.Context, profileID string) (*domain.PromoCredit, error) {
	query, args, err := squirrel.
		Select("pc.profile_id", "pc.balance", "pc.lifetime_earned", "pc.lifetime_purchased", "pc.lifetime_spent", "pc.updated_at").
		From(promoCreditsTable).
		Where(squirrel.Eq{"pc.profile_id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	credit := &domain.PromoCredit{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&credit.ProfileID,
		&credit.Balance,
		&credit.LifetimeEarned,
		&credit.LifetimePurchased,
		&credit.LifetimeSpent,
		&credit.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Autor ainda sem linha de créditos: saldo zerado
			return &domain.PromoCredit{ProfileID: profileID, UpdatedAt: time.Now()}, nil
		}
		return nil, fmt.Errorf("erro ao escanear saldo de créditos: %w", err)
	}

	return credit, nil
}

func (r *creditRepository) AddCredits(
	ctx context.Context,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	var transaction *domain.PromoTransaction

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var txErr error
		transaction, txErr = earnCreditsTx(tx, profileID, amount, source, description, related)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// DeductCredits retorna (nil, nil) quando o saldo é insuficiente: é um
// desfecho esperado que o chamador precisa tratar, não uma falha.
func (r *creditRepository) DeductCredits(
	ctx context.Context,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	var transaction *domain.PromoTransaction

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var txErr error
		transaction, txErr = spendCreditsTx(tx, profileID, amount, source, description, related)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *creditRepository) ListTransactions(profileID string, limit, offset int) ([]*domain.PromoTransaction, error) {
	queryBuilder := selectTransactions().
		Where(squirrel.Eq{"pt.profile_id": profileID}).
		OrderBy("pt.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryTransactions(queryBuilder)
}

func (r *creditRepository) LastBySourceSince(profileID string, source domain.TransactionSource, since time.Time) (*domain.PromoTransaction, error) {
	queryBuilder := selectTransactions().
		Where(squirrel.Eq{"pt.profile_id": profileID, "pt.source": source}).
		Where(squirrel.GtOrEq{"pt.created_at": since}).
		OrderBy("pt.created_at DESC").
		Limit(1)

	transactions, err := r.queryTransactions(queryBuilder)
	if err != nil {
		return nil, err
	}

	if len(transactions) == 0 {
		return nil, nil
	}

	return transactions[0], nil
}

func (r *creditRepository) ListBySource(profileID string, source domain.TransactionSource, limit int) ([]*domain.PromoTransaction, error) {
	queryBuilder := selectTransactions().
		Where(squirrel.Eq{"pt.profile_id": profileID, "pt.source": source}).
		OrderBy("pt.created_at DESC").
		Limit(uint64(limit))

	return r.queryTransactions(queryBuilder)
}

func selectTransactions() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"pt.id",
			"pt.profile_id",
			"pt.type",
			"pt.amount",
			"pt.source",
			"pt.description",
			"pt.related_entity_type",
			"pt.related_entity_id",
			"pt.balance_after",
			"pt.created_at",
		).
		From(promoTransactionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *creditRepository) queryTransactions(queryBuilder squirrel.SelectBuilder) ([]*domain.PromoTransaction, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.PromoTransaction{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.PromoTransaction, 0)
	for rows.Next() {
		transaction := &domain.PromoTransaction{}
		err := rows.Scan(
			&transaction.ID,
			&transaction.ProfileID,
			&transaction.Type,
			&transaction.Amount,
			&transaction.Source,
			&transaction.Description,
			&transaction.RelatedEntityType,
			&transaction.RelatedEntityID,
			&transaction.BalanceAfter,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

// lockCreditRow garante a existência da linha agregada do autor e a trava
// (SELECT ... FOR UPDATE) para serializar mutações concorrentes de saldo.
func lockCreditRow(tx *sql.Tx, profileID string) (*domain.PromoCredit, error) {
	_, err := tx.Exec(
		`INSERT INTO promo_credits (profile_id) VALUES ($1) ON CONFLICT (profile_id) DO NOTHING`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao garantir linha de créditos: %w", err)
	}

	credit := &domain.PromoCredit{}
	row := tx.QueryRow(
		`SELECT profile_id, balance, lifetime_earned, lifetime_purchased, lifetime_spent, updated_at
		 FROM promo_credits WHERE profile_id = $1 FOR UPDATE`,
		profileID,
	)
	err = row.Scan(
		&credit.ProfileID,
		&credit.Balance,
		&credit.LifetimeEarned,
		&credit.LifetimePurchased,
		&credit.LifetimeSpent,
		&credit.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao travar linha de créditos: %w", err)
	}

	return credit, nil
}

// earnCreditsTx aplica um ganho/compra de créditos dentro de tx: atualiza o
// agregado e anexa a transação no ledger com o saldo resultante.
func earnCreditsTx(
	tx *sql.Tx,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	credit, err := lockCreditRow(tx, profileID)
	if err != nil {
		return nil, err
	}

	newBalance := credit.Balance + amount

	lifetimeColumn := "lifetime_earned"
	if source == domain.SourcePurchase {
		lifetimeColumn = "lifetime_purchased"
	}

	updateSQL := fmt.Sprintf(
		`UPDATE promo_credits SET balance = $1, %s = %s + $2, updated_at = CURRENT_TIMESTAMP WHERE profile_id = $3`,
		lifetimeColumn, lifetimeColumn,
	)
	if _, err := tx.Exec(updateSQL, newBalance, amount, profileID); err != nil {
		return nil, fmt.Errorf("erro ao atualizar saldo de créditos: %w", err)
	}

	return appendTransactionTx(tx, profileID, amount, newBalance, source, description, related)
}

// spendCreditsTx aplica um gasto dentro de tx. Retorna (nil, nil) quando o
// saldo é insuficiente: nada é persistido e nenhum estado é mutado.
func spendCreditsTx(
	tx *sql.Tx,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	credit, err := lockCreditRow(tx, profileID)
	if err != nil {
		return nil, err
	}

	if credit.Balance < amount {
		return nil, nil
	}

	newBalance := credit.Balance - amount

	_, err = tx.Exec(
		`UPDATE promo_credits SET balance = $1, lifetime_spent = lifetime_spent + $2, updated_at = CURRENT_TIMESTAMP WHERE profile_id = $3`,
		newBalance, amount, profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar saldo de créditos: %w", err)
	}

	// O valor é registrado negativo no ledger para gastos
	return appendTransactionTx(tx, profileID, -amount, newBalance, source, description, related)
}

func appendTransactionTx(
	tx *sql.Tx,
	profileID string,
	amount int,
	balanceAfter int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	transaction := &domain.PromoTransaction{
		ID:           utils.GenerateUUID(),
		ProfileID:    profileID,
		Type:         source.Type(),
		Amount:       amount,
		Source:       source,
		Description:  description,
		BalanceAfter: balanceAfter,
		CreatedAt:    time.Now(),
	}

	if related != nil {
		transaction.RelatedEntityType = &related.Type
		transaction.RelatedEntityID = &related.ID
	}

	query, args, err := squirrel.
		Insert("promo_transactions").
		Columns(
			"id",
			"profile_id",
			"type",
			"amount",
			"source",
			"description",
			"related_entity_type",
			"related_entity_id",
			"balance_after",
			"created_at",
		).
		Values(
			transaction.ID,
			transaction.ProfileID,
			transaction.Type,
			transaction.Amount,
			transaction.Source,
			transaction.Description,
			transaction.RelatedEntityType,
			transaction.RelatedEntityID,
			transaction.BalanceAfter,
			transaction.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir transação no ledger: %w", err)
	}

	return transaction, nil
}
