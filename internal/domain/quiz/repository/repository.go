package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed demos.yaml
var defaultDemos []byte

type demoCatalog struct {
	Not             model.NotDemo             `yaml:"not"`
	BinaryFirst     model.BinaryFirstDemo     `yaml:"binary_first"`
	BinaryToDecimal model.ConversionDemo      `yaml:"bin_to_dec"`
	Interpretations model.InterpretationsDemo `yaml:"interpretations"`
}

// DemoRepository репозиторий фиксированных демонстрационных данных викторин
type DemoRepository struct {
	catalog demoCatalog
}

// NewDemoRepository создает репозиторий из встроенного каталога demos.yaml
func NewDemoRepository() (*DemoRepository, error) {
	return NewDemoRepositoryFromYAML(defaultDemos)
}

// NewDemoRepositoryFromYAML создает репозиторий из произвольного YAML-документа
func NewDemoRepositoryFromYAML(data []byte) (*DemoRepository, error) {
	var catalog demoCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse demo catalog: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid demo catalog: %w", err)
	}
	return &DemoRepository{catalog: catalog}, nil
}

func (c demoCatalog) validate() error {
	in := c.Interpretations
	if len(in.Patterns) == 0 {
		return fmt.Errorf("interpretations: no patterns")
	}
	if in.AskFirst < 0 || in.AskFirst > len(in.Patterns) {
		return fmt.Errorf("interpretations: ask_first %d out of range", in.AskFirst)
	}
	if in.Correct < 1 || in.Correct > len(in.Choices) {
		return fmt.Errorf("interpretations: correct choice %d out of range", in.Correct)
	}
	if c.BinaryToDecimal.Pattern == "" {
		return fmt.Errorf("bin_to_dec: empty pattern")
	}
	if c.BinaryFirst.A == "" || c.BinaryFirst.B == "" {
		return fmt.Errorf("binary_first: empty operands")
	}
	return nil
}

// GetNotDemo возвращает операнд и пояснения для викторины по NOT
func (r *DemoRepository) GetNotDemo(ctx context.Context) (model.NotDemo, error) {
	if err := ctx.Err(); err != nil {
		return model.NotDemo{}, err
	}
	demo := r.catalog.Not
	demo.Notes = append([]string(nil), demo.Notes...)
	return demo, nil
}

// GetBinaryFirstDemo возвращает двоичные операнды викторины "двоичные значения даны"
func (r *DemoRepository) GetBinaryFirstDemo(ctx context.Context) (model.BinaryFirstDemo, error) {
	if err := ctx.Err(); err != nil {
		return model.BinaryFirstDemo{}, err
	}
	return r.catalog.BinaryFirst, nil
}

// GetConversionDemo возвращает шаблон для перевода из двоичной системы в десятичную
func (r *DemoRepository) GetConversionDemo(ctx context.Context) (model.ConversionDemo, error) {
	if err := ctx.Err(); err != nil {
		return model.ConversionDemo{}, err
	}
	return r.catalog.BinaryToDecimal, nil
}

// GetInterpretationsDemo возвращает шаблоны и вопрос "один шаблон, разные значения"
func (r *DemoRepository) GetInterpretationsDemo(ctx context.Context) (model.InterpretationsDemo, error) {
	if err := ctx.Err(); err != nil {
		return model.InterpretationsDemo{}, err
	}
	in := r.catalog.Interpretations
	in.Patterns = append([]string(nil), in.Patterns...)
	in.Choices = append([]string(nil), in.Choices...)
	in.Answer = append([]string(nil), in.Answer...)
	in.Insights = append([]string(nil), in.Insights...)
	return in, nil
}
