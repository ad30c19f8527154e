// Package authenticating valida os tokens JWT emitidos pela plataforma
// principal. Esta API não emite tokens, apenas os aceita.
package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

var (
	// ErrInvalidToken indica um token malformado, com assinatura inválida
	// ou sem o perfil do autor
	ErrInvalidToken = errors.New("token inválido")

	// ErrExpiredToken indica um token vencido
	ErrExpiredToken = errors.New("token expirado")
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type service struct {
	config *config.Config
}

func NewService(config *config.Config) Authenticator {
	return &service{
		config: config,
	}
}

func (s *service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}

		return []byte(s.config.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.ProfileID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
