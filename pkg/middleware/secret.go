package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/pkg/apiErrors"
)

// CronSecretHeader é o cabeçalho que carrega o segredo dos endpoints internos
const CronSecretHeader = "X-Cron-Secret"

// CronSecret restringe o acesso aos endpoints internos de cron ao orquestrador
// que conhece o segredo compartilhado
func CronSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(CronSecretHeader)

			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logrus.WithField("path", r.URL.Path).
					Warn("Tentativa de acesso a endpoint interno com segredo inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidSecret, "Segredo de cron inválido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
