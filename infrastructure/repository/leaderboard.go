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
	leaderboardsTable = "leaderboards l"
	snapshotsTable    = "leaderboard_snapshots ls"
	entriesTable      = "leaderboard_entries le"
)

type LeaderboardRepository interface {
	GetBySlug(slug string) (*domain.Leaderboard, error)
	ListActive() ([]*domain.Leaderboard, error)
	CreateSnapshot(ctx context.Context, snapshot *domain.LeaderboardSnapshot, entries []*domain.LeaderboardEntry) error
	GetLatestSnapshot(leaderboardID string) (*domain.LeaderboardSnapshot, error)
	GetSnapshotBefore(leaderboardID string, before time.Time) (*domain.LeaderboardSnapshot, error)
	ListSnapshots(leaderboardID string, limit int) ([]*domain.LeaderboardSnapshot, error)
	GetEntries(snapshotID string) ([]*domain.LeaderboardEntry, error)
	GetEntriesPage(snapshotID string, limit, offset int) ([]*domain.LeaderboardEntryView, error)
	GetEntryScore(snapshotID, profileID string) (float64, bool, error)
}

type leaderboardRepository struct {
	conn *postgres.Connection
}

func NewLeaderboardRepository(conn *postgres.Connection) LeaderboardRepository {
	return &leaderboardRepository{
		conn: conn,
	}
}

func (r *leaderboardRepository) GetBySlug(slug string) (*domain.Leaderboard, error) {
	query, args, err := selectLeaderboards().
		Where(squirrel.Eq{"l.slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	leaderboard, err := scanLeaderboardRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear leaderboard: %w", err)
	}

	return leaderboard, nil
}

func (r *leaderboardRepository) ListActive() ([]*domain.Leaderboard, error) {
	query, args, err := selectLeaderboards().
		Where(squirrel.Eq{"l.is_active": true}).
		OrderBy("l.slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leaderboards := make([]*domain.Leaderboard, 0)
	for rows.Next() {
		leaderboard := &domain.Leaderboard{}
		err := rows.Scan(
			&leaderboard.ID,
			&leaderboard.Slug,
			&leaderboard.Name,
			&leaderboard.Type,
			&leaderboard.Category,
			&leaderboard.TimeWindow,
			&leaderboard.Weights.Sales,
			&leaderboard.Weights.Engagement,
			&leaderboard.Weights.Community,
			&leaderboard.IsActive,
			&leaderboard.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear leaderboard: %w", err)
		}
		leaderboards = append(leaderboards, leaderboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leaderboards, nil
}

// CreateSnapshot persiste o snapshot e suas entradas ranqueadas em uma única
// transação. Snapshots nunca são mutados ou removidos depois disso.
func (r *leaderboardRepository) CreateSnapshot(
	ctx context.Context,
	snapshot *domain.LeaderboardSnapshot,
	entries []*domain.LeaderboardEntry,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		snapshotSQL, snapshotArgs, err := squirrel.
			Insert("leaderboard_snapshots").
			Columns("id", "leaderboard_id", "snapshot_date", "time_window_start", "time_window_end", "entry_count").
			Values(
				snapshot.ID,
				snapshot.LeaderboardID,
				snapshot.SnapshotDate,
				snapshot.TimeWindowStart,
				snapshot.TimeWindowEnd,
				snapshot.EntryCount,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(snapshotSQL, snapshotArgs...); err != nil {
			return fmt.Errorf("erro ao inserir snapshot: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		insertBuilder := squirrel.
			Insert("leaderboard_entries").
			Columns(
				"snapshot_id",
				"profile_id",
				"rank",
				"total_score",
				"sales_score",
				"engagement_score",
				"community_score",
				"raw_metrics",
				"created_at",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries {
			rawMetrics, err := json.Marshal(entry.RawMetrics)
			if err != nil {
				return fmt.Errorf("erro ao serializar métricas brutas: %w", err)
			}

			insertBuilder = insertBuilder.Values(
				snapshot.ID,
				entry.ProfileID,
				entry.Rank,
				entry.TotalScore,
				entry.SalesScore,
				entry.EngagementScore,
				entry.CommunityScore,
				rawMetrics,
				entry.CreatedAt,
			)
		}

		entriesSQL, entriesArgs, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.Exec(entriesSQL, entriesArgs...); err != nil {
			return fmt.Errorf("erro ao inserir entradas do snapshot: %w", err)
		}

		return nil
	})
}

func (r *leaderboardRepository) GetLatestSnapshot(leaderboardID string) (*domain.LeaderboardSnapshot, error) {
	return r.getSnapshot(squirrel.Eq{"ls.leaderboard_id": leaderboardID})
}

// GetSnapshotBefore retorna o snapshot imediatamente anterior a uma data,
// usado no cálculo de deltas de posição na leitura.
func (r *leaderboardRepository) GetSnapshotBefore(leaderboardID string, before time.Time) (*domain.LeaderboardSnapshot, error) {
	return r.getSnapshot(squirrel.And{
		squirrel.Eq{"ls.leaderboard_id": leaderboardID},
		squirrel.Lt{"ls.snapshot_date": before},
	})
}

func (r *leaderboardRepository) getSnapshot(whereClause squirrel.Sqlizer) (*domain.LeaderboardSnapshot, error) {
	query, args, err := selectSnapshots().
		Where(whereClause).
		OrderBy("ls.snapshot_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot := &domain.LeaderboardSnapshot{}
	err = row.Scan(
		&snapshot.ID,
		&snapshot.LeaderboardID,
		&snapshot.SnapshotDate,
		&snapshot.TimeWindowStart,
		&snapshot.TimeWindowEnd,
		&snapshot.EntryCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *leaderboardRepository) ListSnapshots(leaderboardID string, limit int) ([]*domain.LeaderboardSnapshot, error) {
	query, args, err := selectSnapshots().
		Where(squirrel.Eq{"ls.leaderboard_id": leaderboardID}).
		OrderBy("ls.snapshot_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.LeaderboardSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.LeaderboardSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.LeaderboardID,
			&snapshot.SnapshotDate,
			&snapshot.TimeWindowStart,
			&snapshot.TimeWindowEnd,
			&snapshot.EntryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *leaderboardRepository) GetEntries(snapshotID string) ([]*domain.LeaderboardEntry, error) {
	query, args, err := squirrel.
		Select(
			"le.snapshot_id",
			"le.profile_id",
			"le.rank",
			"le.total_score",
			"le.sales_score",
			"le.engagement_score",
			"le.community_score",
			"le.raw_metrics",
			"le.created_at",
		).
		From(entriesTable).
		Where(squirrel.Eq{"le.snapshot_id": snapshotID}).
		OrderBy("le.rank ASC").
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

	entries := make([]*domain.LeaderboardEntry, 0)
	for rows.Next() {
		entry := &domain.LeaderboardEntry{}
		var rawMetrics []byte

		err := rows.Scan(
			&entry.SnapshotID,
			&entry.ProfileID,
			&entry.Rank,
			&entry.TotalScore,
			&entry.SalesScore,
			&entry.EngagementScore,
			&entry.CommunityScore,
			&rawMetrics,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
		}

		if err := json.Unmarshal(rawMetrics, &entry.RawMetrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas brutas: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// GetEntriesPage retorna uma página de entradas com os dados de exibição do
// autor já unidos (pen name e avatar do perfil comunitário).
func (r *leaderboardRepository) GetEntriesPage(snapshotID string, limit, offset int) ([]*domain.LeaderboardEntryView, error) {
	query, args, err := squirrel.
		Select(
			"le.snapshot_id",
			"le.profile_id",
			"le.rank",
			"le.total_score",
			"le.sales_score",
			"le.engagement_score",
			"le.community_score",
			"le.raw_metrics",
			"le.created_at",
			"cp.pen_name",
			"cp.avatar_url",
		).
		From(entriesTable).
		Join("community_profiles cp ON le.profile_id = cp.id").
		Where(squirrel.Eq{"le.snapshot_id": snapshotID}).
		OrderBy("le.rank ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	views := make([]*domain.LeaderboardEntryView, 0)
	for rows.Next() {
		view := &domain.LeaderboardEntryView{}
		var rawMetrics []byte

		err := rows.Scan(
			&view.SnapshotID,
			&view.ProfileID,
			&view.Rank,
			&view.TotalScore,
			&view.SalesScore,
			&view.EngagementScore,
			&view.CommunityScore,
			&rawMetrics,
			&view.CreatedAt,
			&view.PenName,
			&view.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
		}

		if err := json.Unmarshal(rawMetrics, &view.RawMetrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas brutas: %w", err)
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return views, nil
}

func (r *leaderboardRepository) GetEntryScore(snapshotID, profileID string) (float64, bool, error) {
	query, args, err := squirrel.
		Select("le.total_score").
		From(entriesTable).
		Where(squirrel.Eq{"le.snapshot_id": snapshotID, "le.profile_id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var score float64
	err = r.conn.QueryRow(query, args...).Scan(&score)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("erro ao escanear pontuação: %w", err)
	}

	return score, true, nil
}

func selectLeaderboards() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"l.id",
			"l.slug",
			"l.name",
			"l.type",
			"l.category",
			"l.time_window",
			"l.sales_weight",
			"l.engagement_weight",
			"l.community_weight",
			"l.is_active",
			"l.created_at",
		).
		From(leaderboardsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func selectSnapshots() squirrel.SelectBuilder {
	return squirrel.
		Select("ls.id", "ls.leaderboard_id", "ls.snapshot_date", "ls.time_window_start", "ls.time_window_end", "ls.entry_count").
		From(snapshotsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanLeaderboardRow(row *sql.Row) (*domain.Leaderboard, error) {
	leaderboard := &domain.Leaderboard{}

	err := row.Scan(
		&leaderboard.ID,
		&leaderboard.Slug,
		&leaderboard.Name,
		&leaderboard.Type,
		&leaderboard.Category,
		&leaderboard.TimeWindow,
		&leaderboard.Weights.Sales,
		&leaderboard.Weights.Engagement,
		&leaderboard.Weights.Community,
		&leaderboard.IsActive,
		&leaderboard.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return leaderboard, nil
}
