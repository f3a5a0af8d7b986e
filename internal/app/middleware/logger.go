package middleware

import (
	"context"
	"log"
	"time"

	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// Logger возвращает middleware, которое логирует вызовы точек входа консоли.
// Функция принимает неограниченное число параметров типа *log.Logger. Если передан хотя бы один логгер,
// используется он, иначе применяется логгер по умолчанию (log.Default()).
func Logger(logger ...*log.Logger) console.MiddlewareFunc {
	var l *log.Logger
	if len(logger) > 0 {
		l = logger[0]
	} else {
		l = log.Default()
	}
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(ctx context.Context, c *console.Console) error {
			endpoint := console.Endpoint(ctx)
			start := time.Now()
			l.Printf("endpoint %s: started", endpoint)

			err := next(ctx, c)
			if err != nil {
				l.Printf("endpoint %s: failed after %s: %v", endpoint, time.Since(start).Round(time.Millisecond), err)
				return err
			}
			l.Printf("endpoint %s: done in %s", endpoint, time.Since(start).Round(time.Millisecond))
			return nil
		}
	}
}
