package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const (
	// DefaultAPIKeyHeader заголовок с общим секретом по умолчанию
	DefaultAPIKeyHeader = "X-API-Key"

	msgUnauthorized = "требуется авторизация"
)

// APIKey проверяет общий секрет в заголовке до передачи запроса дальше
// Пустой ключ в конфиге означает, что все запросы отклоняются
func APIKey(key, header string, logger Logger) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	expected := []byte(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(header)
			if len(expected) == 0 || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				logger.Warn("Auth - rejected request: path=%s, request_id=%s", r.URL.Path, GetRequestID(r.Context()))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
