package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

const communityProfilesTable = "community_profiles cp"

// ProfileRepository é a projeção read-only do serviço de perfis comunitários
type ProfileRepository interface {
	GetByID(profileID string) (*domain.AuthorProfile, error)
	ListEligible() ([]*domain.AuthorProfile, error)
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) GetByID(profileID string) (*domain.AuthorProfile, error) {
	query, args, err := selectProfiles().
		Where(squirrel.Eq{"cp.id": profileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	profile := &domain.AuthorProfile{}
	err = row.Scan(
		&profile.ID,
		&profile.PenName,
		&profile.AvatarURL,
		&profile.Visibility,
		&profile.ShowStats,
		&profile.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	return profile, nil
}

// ListEligible retorna os autores elegíveis para rankings: perfil público
// com compartilhamento de estatísticas habilitado.
func (r *profileRepository) ListEligible() ([]*domain.AuthorProfile, error) {
	query, args, err := selectProfiles().
		Where(squirrel.Eq{
			"cp.visibility": domain.ProfileVisibilityPublic,
			"cp.show_stats": true,
		}).
		OrderBy("cp.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.AuthorProfile, 0)
	for rows.Next() {
		profile := &domain.AuthorProfile{}
		err := rows.Scan(
			&profile.ID,
			&profile.PenName,
			&profile.AvatarURL,
			&profile.Visibility,
			&profile.ShowStats,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func selectProfiles() squirrel.SelectBuilder {
	return squirrel.
		Select("cp.id", "cp.pen_name", "cp.avatar_url", "cp.visibility", "cp.show_stats", "cp.created_at").
		From(communityProfilesTable).
		PlaceholderFormat(squirrel.Dollar)
}
