package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IT-Nick/bitwise-tutor/internal/app"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	theme := flag.String("theme", "", "run a single quiz: and, or, xor, not, shift, binary_first, dec_to_bin, bin_to_dec, interpretations")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if *theme != "" {
		cfg.Quiz.Theme = *theme
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(cfg, app.IO{In: os.Stdin, Out: os.Stdout, Log: os.Stderr})
	if err != nil {
		log.Fatalf("Не удалось запустить приложение: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			return
		}
		stop()
		log.Fatalf("Ошибка: %v", err)
	}
}
