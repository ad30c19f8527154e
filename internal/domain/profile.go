package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ProfileVisibility controla a exposição do perfil comunitário de um autor
type ProfileVisibility string

const (
	ProfileVisibilityPublic  ProfileVisibility = "public"
	ProfileVisibilityPrivate ProfileVisibility = "private"
)

// AuthorProfile é a projeção read-only do serviço de perfis usada por este core.
// Um autor é elegível para rankings quando o perfil é público e o
// compartilhamento de estatísticas está habilitado.
type AuthorProfile struct {
	ID         string            `json:"id"`
	PenName    string            `json:"pen_name"`
	AvatarURL  *string           `json:"avatar_url"`
	Visibility ProfileVisibility `json:"visibility"`
	ShowStats  bool              `json:"show_stats"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Eligible indica se o autor participa dos rankings
func (p AuthorProfile) Eligible() bool {
	return p.Visibility == ProfileVisibilityPublic && p.ShowStats
}

// Claims são as claims extraídas do token de sessão emitido pelo serviço de
// autenticação (fora deste core; apenas a validação acontece aqui)
type Claims struct {
	ProfileID string `json:"profile_id"`
	PenName   string `json:"pen_name"`
	jwt.RegisteredClaims
}
