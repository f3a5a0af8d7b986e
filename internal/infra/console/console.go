// Package console реализует терминальный транспорт: построчный ввод,
// вывод и маршрутизацию обработчиков по именам точек входа.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/width"
)

// ErrUnknownEndpoint для точки входа не зарегистрирован обработчик.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// HandlerFunc обработчик точки входа.
type HandlerFunc func(ctx context.Context, c *Console) error

// MiddlewareFunc оборачивает обработчик.
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

type endpointKey struct{}

// Endpoint возвращает имя точки входа, обрабатываемой в ctx.
func Endpoint(ctx context.Context) string {
	name, _ := ctx.Value(endpointKey{}).(string)
	return name
}

type line struct {
	text string
	err  error
}

// Console построчный ввод-вывод поверх io.Reader/io.Writer.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string

	startRead sync.Once
	lines     chan line
	lastInput string

	middleware []MiddlewareFunc
	handlers   map[string]HandlerFunc
}

// New создает консоль. prompt выводится перед каждым ответом на вопрос.
func New(in io.Reader, out io.Writer, prompt string) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		prompt:   prompt,
		lines:    make(chan line),
		handlers: make(map[string]HandlerFunc),
	}
}

// Use добавляет middleware ко всем точкам входа.
func (c *Console) Use(middleware ...MiddlewareFunc) {
	c.middleware = append(c.middleware, middleware...)
}

// Handle регистрирует обработчик точки входа со своими middleware.
func (c *Console) Handle(endpoint string, h HandlerFunc, middleware ...MiddlewareFunc) {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	c.handlers[endpoint] = h
}

// Dispatch вызывает обработчик точки входа, обернутый глобальными middleware.
func (c *Console) Dispatch(ctx context.Context, endpoint string) error {
	h, ok := c.handlers[endpoint]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint)
	}
	for i := len(c.middleware) - 1; i >= 0; i-- {
		h = c.middleware[i](h)
	}
	return h(context.WithValue(ctx, endpointKey{}, endpoint), c)
}

func (c *Console) readLoop() {
	for {
		text, err := c.in.ReadString('\n')
		if text != "" {
			c.lines <- line{text: text}
		}
		if err != nil {
			// Читатель завершился, все последующие вызовы получают ту же ошибку.
			for {
				c.lines <- line{err: err}
			}
		}
	}
}

// ReadLine возвращает следующую строку ввода без пробелов по краям.
// Полноширинные символы приводятся к обычным ("１０１" -> "101").
// В конце ввода возвращает io.EOF, при отмене ctx – ctx.Err().
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.startRead.Do(func() { go c.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.lines:
		if l.err != nil {
			return "", l.err
		}
		c.lastInput = strings.TrimSpace(width.Narrow.String(l.text))
		return c.lastInput, nil
	}
}

// LastInput последняя прочитанная строка.
func (c *Console) LastInput() string {
	return c.lastInput
}

// Prompt выводит приглашение к вводу.
func (c *Console) Prompt() {
	fmt.Fprint(c.out, c.prompt)
}

// Print выводит текст без перевода строки.
func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

// Printf форматированный вывод.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Println выводит строку.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
