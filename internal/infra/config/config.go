package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config параметры приложения. Источники применяются по порядку:
// значения по умолчанию, YAML-файл, файл .env, переменные окружения.
type Config struct {
	Quiz struct {
		Seed  int64  `yaml:"seed" env:"BWT_SEED"`   // 0 – криптографически случайный seed
		Theme string `yaml:"theme" env:"BWT_THEME"` // Пусто – главное меню
	} `yaml:"quiz"`
	Console struct {
		Prompt string `yaml:"prompt" env:"BWT_PROMPT"`
	} `yaml:"console"`
	Log struct {
		Debug  bool   `yaml:"debug" env:"BWT_DEBUG"`
		Prefix string `yaml:"prefix" env:"BWT_LOG_PREFIX"`
	} `yaml:"log"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.Console.Prompt = ">>> "
	cfg.Log.Prefix = "[bwt] "
	return cfg
}

// LoadConfig загружает конфигурацию, .env читается из текущего каталога.
// Пустой filename означает работу без YAML-файла.
func LoadConfig(filename string) (*Config, error) {
	return Load(filename, ".env")
}

// Load загружает конфигурацию из filename и файла переменных dotenv.
// Отсутствующий dotenv не считается ошибкой.
func Load(filename, dotenv string) (*Config, error) {
	const op = "config.LoadConfig"

	config := Default()

	if filename != "" {
		if err := decodeFile(filename, config); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: failed to load .env: %w", op, err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("%s: parse env: %w", op, err)
	}

	return config, nil
}

func decodeFile(filename string, config *Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}

	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Println("f.Close() failed ", err)
		}
	}(f)

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	// Пустой файл не меняет значения по умолчанию.
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return nil
}
