package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para dados de configuração (seeds)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateUUID gera um identificador para linhas de alto volume
// (snapshots, transações, boosts, concessões de badge)
func GenerateUUID() string {
	return uuid.New().String()
}
