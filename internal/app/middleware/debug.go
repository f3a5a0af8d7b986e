package middleware

import (
	"context"
	"log"

	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// DebugUserActions возвращает middleware, которое при включённом режиме отладки
// логирует точку входа, последний ввод пользователя и результат обработчика.
func DebugUserActions(enabled bool, logger *log.Logger) console.MiddlewareFunc {
	return func(next console.HandlerFunc) console.HandlerFunc {
		if !enabled {
			return next
		}
		return func(ctx context.Context, c *console.Console) error {
			err := next(ctx, c)
			logger.Printf("DEBUG: Endpoint: %s, Last input: %q, Error: %v",
				console.Endpoint(ctx), c.LastInput(), err)
			return err
		}
	}
}
