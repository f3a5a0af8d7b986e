package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("  101 \n１０１\r\nlast"), io.Discard, ">>> ")
	ctx := context.Background()

	for _, want := range []string{"101", "101", "last"} {
		got, err := c.ReadLine(ctx)
		if err != nil {
			t.Fatalf("ReadLine вернул ошибку: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine = %q, ожидалось %q", got, want)
		}
		if c.LastInput() != want {
			t.Errorf("LastInput = %q, ожидалось %q", c.LastInput(), want)
		}
	}

	for i := 0; i < 2; i++ {
		if _, err := c.ReadLine(ctx); !errors.Is(err, io.EOF) {
			t.Fatalf("Ожидался io.EOF, получено %v", err)
		}
	}
}

func TestReadLine_Canceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := New(pr, io.Discard, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.ReadLine(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Ожидался context.DeadlineExceeded, получено %v", err)
	}
}

func TestOutput(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, ">>> ")
	c.Println("Q1:", "a & b?")
	c.Printf("%d-bit\n", 8)
	c.Print("x")
	c.Prompt()

	want := "Q1: a & b?\n8-bit\nx>>> "
	if out.String() != want {
		t.Errorf("Вывод %q, ожидалось %q", out.String(), want)
	}
}

func TestDispatch_MiddlewareOrder(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard, "")
	var trace []string
	mark := func(name string) MiddlewareFunc {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, c *Console) error {
				trace = append(trace, name)
				return next(ctx, c)
			}
		}
	}

	c.Use(mark("global1"), mark("global2"))
	c.Handle("menu", func(ctx context.Context, c *Console) error {
		trace = append(trace, "handler:"+Endpoint(ctx))
		return nil
	}, mark("local"))

	if err := c.Dispatch(context.Background(), "menu"); err != nil {
		t.Fatalf("Dispatch вернул ошибку: %v", err)
	}
	want := []string{"global1", "global2", "local", "handler:menu"}
	if strings.Join(trace, ",") != strings.Join(want, ",") {
		t.Errorf("Порядок вызовов %v, ожидалось %v", trace, want)
	}
}

func TestDispatch_UnknownEndpoint(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard, "")
	if err := c.Dispatch(context.Background(), "nope"); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("Ожидалась ErrUnknownEndpoint, получено %v", err)
	}
}
