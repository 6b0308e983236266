package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID
//
// Сервис работает за внутренним gateway, который выполняет
// аутентификацию и проставляет заголовок. Здесь проверяем только наличие.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(userIDHeader) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}
