package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
)

// StaffIDHeader заголовок аутентификации сотрудника.
// Проверку подлинности выполняет API-gateway, сюда приходит уже
// проверенный идентификатор
const StaffIDHeader = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth middleware защищённых маршрутов: требует заголовок X-Staff-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get(StaffIDHeader)
		if staffID == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок "+StaffIDHeader)
			return
		}

		if _, err := strconv.ParseInt(staffID, 10, 64); err != nil {
			handlers.RespondUnauthorized(w, "некорректный "+StaffIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffID извлекает идентификатор сотрудника из контекста запроса.
// Пустая строка означает, что запрос пришёл не через Auth
func StaffID(ctx context.Context) string {
	id, _ := ctx.Value(staffIDKey).(string)
	return id
}
