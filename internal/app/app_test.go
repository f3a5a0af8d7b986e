package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	quizService "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/service"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/config"
)

func newTestApp(t *testing.T, cfg *config.Config, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	app, err := NewApp(cfg, IO{In: strings.NewReader(input), Out: &out, Log: &logs})
	if err != nil {
		t.Fatalf("NewApp вернул ошибку: %v", err)
	}
	return app, &out, &logs
}

func TestRun_Menu(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.Seed = 1
	app, out, _ := newTestApp(t, cfg, "5\n11111101\n-3\n11111101\n253\n8\n")

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run вернул ошибку: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"Welcome to Bitwise Tutor (bwt)!",
		"Q1: What is `~a` in binary? (a is signed)",
		"~2 (signed) = -3, while ~2 (unsigned) = 253",
		"Thank you for using Bitwise Tutor. Goodbye!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Вывод не содержит %q", want)
		}
	}
}

func TestRun_SingleTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.Theme = "bin_to_dec"
	app, out, _ := newTestApp(t, cfg, "170\n-86\n")

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run вернул ошибку: %v", err)
	}
	text := out.String()
	if strings.Contains(text, "Welcome") {
		t.Error("В режиме одной викторины приветствие не выводится")
	}
	for _, want := range []string{
		"Correct! 10101010 as an unsigned integer is 170",
		"Correct! 10101010 as a signed integer is -86",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Вывод не содержит %q", want)
		}
	}
}

func TestRun_EOFIsClean(t *testing.T) {
	app, _, logs := newTestApp(t, config.Default(), "1\n")
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run вернул ошибку: %v", err)
	}
	if !strings.Contains(logs.String(), "input closed") {
		t.Errorf("Неожиданный лог: %s", logs.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	app, err := NewApp(config.Default(), IO{In: pr, Out: io.Discard, Log: io.Discard})
	if err != nil {
		t.Fatalf("NewApp вернул ошибку: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Ожидалась context.Canceled, получено %v", err)
	}
}

func TestRun_DebugLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.Seed = 7
	cfg.Log.Debug = true
	app, _, logs := newTestApp(t, cfg, "8\n")

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run вернул ошибку: %v", err)
	}
	for _, want := range []string{"quiz seed: 7", "endpoint menu: started", `Last input: "8"`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("Лог не содержит %q:\n%s", want, logs.String())
		}
	}
}

func TestNewApp_UnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.Theme = "nand"
	_, err := NewApp(cfg, IO{In: strings.NewReader(""), Out: io.Discard, Log: io.Discard})
	if !errors.Is(err, quizService.ErrUnknownTheme) {
		t.Errorf("Ожидалась ErrUnknownTheme, получено %v", err)
	}
}
