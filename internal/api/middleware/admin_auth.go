package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/RIZZA-BookingService/internal/api/handlers"
)

const msgUnauthorized = "autenticação necessária"

// SessionReader читает административную сессию из запроса
type SessionReader interface {
	Get(r *http.Request) (string, bool)
}

// AdminAuth пускает запрос при валидной сессионной куке
// либо при корректных HTTP Basic креденшалах (сравнение за константное время)
func AdminAuth(sessions SessionReader, username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Get(r); ok {
				next.ServeHTTP(w, r)
				return
			}

			if basicUser, basicPass, ok := r.BasicAuth(); ok {
				userOK := subtle.ConstantTimeCompare([]byte(basicUser), []byte(username)) == 1
				passOK := subtle.ConstantTimeCompare([]byte(basicPass), []byte(password)) == 1
				if userOK && passOK {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="RIZZA Admin"`)
			handlers.RespondUnauthorized(w, msgUnauthorized)
		})
	}
}
