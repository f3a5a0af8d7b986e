package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// Recover возвращает middleware-функцию, которая перехватывает панику, возникшую в обработчике, и вызывает
// заданный обработчик ошибки. Если функция обработки ошибки не передана, паника логируется.
//
// Принцип работы:
//  1. Вызов следующего обработчика оборачивается в defer-функцию.
//  2. Значение panic преобразуется в error.
//  3. Вызывается функция обработки ошибки, ошибка возвращается вызывающей стороне.
func Recover(onError ...func(error, context.Context)) console.MiddlewareFunc {
	var handleError func(error, context.Context)
	if len(onError) > 0 {
		handleError = onError[0]
	} else {
		handleError = func(err error, ctx context.Context) {
			log.Printf("Recovered from panic in %s: %v", console.Endpoint(ctx), err)
		}
	}

	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(ctx context.Context, c *console.Console) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("unknown panic: %v", x)
					}
					handleError(e, ctx)
					err = e
				}
			}()
			return next(ctx, c)
		}
	}
}
