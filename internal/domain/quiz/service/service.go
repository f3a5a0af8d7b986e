package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/codec"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/repository"
)

var (
	// ErrUnknownTheme тема викторины не поддерживается.
	ErrUnknownTheme = errors.New("unknown quiz theme")
	// ErrInvalidParams явно заданные параметры викторины недопустимы.
	ErrInvalidParams = errors.New("invalid quiz params")
)

// QuizParams необязательные параметры генерации. Нулевые значения означают
// случайный выбор (или встроенные демонстрационные данные).
type QuizParams struct {
	Operands   []int64  // Операнды вместо случайных
	LeftShift  uint     // Величина сдвига влево, 0 – случайно
	RightShift uint     // Величина сдвига вправо, 0 – случайно
	Patterns   []string // Двоичные шаблоны вместо встроенных
}

func (p *QuizParams) operands() []int64 {
	if p == nil {
		return nil
	}
	return p.Operands
}

func (p *QuizParams) patterns() []string {
	if p == nil {
		return nil
	}
	return p.Patterns
}

// QuizService генерирует викторины. Генератор случайных чисел принадлежит
// вызывающей стороне и передается явно.
type QuizService struct {
	demoRepo *repository.DemoRepository
	rng      *rand.Rand
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(demoRepo *repository.DemoRepository, rng *rand.Rand) *QuizService {
	return &QuizService{
		demoRepo: demoRepo,
		rng:      rng,
	}
}

// GenerateQuiz создает сессию викторины для темы. params может быть nil.
func (s *QuizService) GenerateQuiz(ctx context.Context, theme model.Theme, params *QuizParams) (*Session, error) {
	var (
		session *Session
		err     error
	)

	switch theme {
	case model.ThemeAnd:
		session, err = s.bitwiseQuiz(theme, codec.OpAnd, params)
	case model.ThemeOr:
		session, err = s.bitwiseQuiz(theme, codec.OpOr, params)
	case model.ThemeXor:
		session, err = s.bitwiseQuiz(theme, codec.OpXor, params)
	case model.ThemeNot:
		session, err = s.notQuiz(ctx, params)
	case model.ThemeShift:
		session, err = s.shiftQuiz(params)
	case model.ThemeBinaryFirst:
		session, err = s.binaryFirstQuiz(ctx, params)
	case model.ThemeDecimalToBinary:
		session, err = s.decimalToBinaryQuiz(params)
	case model.ThemeBinaryToDecimal:
		session, err = s.binaryToDecimalQuiz(ctx, params)
	case model.ThemeInterpretations:
		session, err = s.interpretationsQuiz(ctx, params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, string(theme))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s quiz: %w", theme, err)
	}
	return session, nil
}

// explicit проверяет явно заданное значение операнда.
func explicit(value int64, w codec.Width, sign codec.Signedness) (codec.FixedInt, error) {
	v, err := codec.New(value, w, sign)
	if err != nil {
		return codec.FixedInt{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return v, nil
}

// drawSigned8 равномерно выбирает знаковое 8-битное число из всего диапазона.
func (s *QuizService) drawSigned8() codec.FixedInt {
	return codec.Wrap(int64(s.rng.Intn(256))-128, codec.Width8, codec.Signed)
}

// drawShift выбирает величину сдвига из [1, 3].
func (s *QuizService) drawShift() uint {
	return uint(1 + s.rng.Intn(3))
}

func checkShift(n uint) error {
	if n > 7 {
		return fmt.Errorf("%w: shift amount %d not in [1, 7]", ErrInvalidParams, n)
	}
	return nil
}
