package quiz_handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/answer_handler"
	messageRepository "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/repository"
	messageService "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/service"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	quizRepository "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/repository"
	quizService "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/service"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

func newHandler(t *testing.T, params *quizService.QuizParams) *QuizHandler {
	t.Helper()
	msgRepo, err := messageRepository.NewMessageRepository()
	if err != nil {
		t.Fatalf("NewMessageRepository вернул ошибку: %v", err)
	}
	demoRepo, err := quizRepository.NewDemoRepository()
	if err != nil {
		t.Fatalf("NewDemoRepository вернул ошибку: %v", err)
	}
	return NewQuizHandler(
		quizService.NewQuizService(demoRepo, rand.New(rand.NewSource(1))),
		answer_handler.NewAnswerHandler(messageService.NewMessageService(msgRepo)),
		params,
	)
}

func TestHandle_BitwiseThemes(t *testing.T) {
	tests := []struct {
		theme   model.Theme
		answers []string
		expr    string
	}{
		{model.ThemeAnd, []string{"00000101", "00001001", "00000001", "1"}, "a&b"},
		{model.ThemeOr, []string{"00000101", "00001001", "00001101", "13"}, "a|b"},
		{model.ThemeXor, []string{"00000101", "00001001", "00001100", "12"}, "a^b"},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			h := newHandler(t, &quizService.QuizParams{Operands: []int64{5, 9}})
			var out bytes.Buffer
			c := console.New(strings.NewReader(strings.Join(tt.answers, "\n")+"\n"), &out, ">>> ")

			if err := h.Handle(context.Background(), c, tt.theme); err != nil {
				t.Fatalf("Handle вернул ошибку: %v", err)
			}
			text := out.String()
			for _, want := range []string{
				"Given `a=5` and `b=9`,",
				"Q3: What is the result of `" + tt.expr + "` in binary?",
				"Q4: What is the result of `" + tt.expr + "` in decimal?",
			} {
				if !strings.Contains(text, want) {
					t.Errorf("Вывод не содержит %q:\n%s", want, text)
				}
			}
			if n := strings.Count(text, "Correct!"); n != 4 {
				t.Errorf("Ожидалось 4 правильных ответа, получено %d", n)
			}
		})
	}
}

func TestHandle_ShiftWithOutro(t *testing.T) {
	h := newHandler(t, &quizService.QuizParams{Operands: []int64{9}, LeftShift: 1, RightShift: 1})
	var out bytes.Buffer
	c := console.New(strings.NewReader("00001001\n00010010\n18\n00000100\n4\n"), &out, ">>> ")

	if err := h.GetHandlerFunc(model.ThemeShift)(context.Background(), c); err != nil {
		t.Fatalf("Handle вернул ошибку: %v", err)
	}
	if !strings.Contains(out.String(), "Q5: What is the decimal result of a >> 1?") {
		t.Errorf("Неожиданный вывод:\n%s", out.String())
	}
}

func TestHandle_NotOutro(t *testing.T) {
	h := newHandler(t, nil)
	var out bytes.Buffer
	c := console.New(strings.NewReader("11111101\n-3\n11111101\n253\n"), &out, ">>> ")

	if err := h.Handle(context.Background(), c, model.ThemeNot); err != nil {
		t.Fatalf("Handle вернул ошибку: %v", err)
	}
	if !strings.Contains(out.String(), "~2 (signed) = -3, while ~2 (unsigned) = 253") {
		t.Errorf("Вывод не содержит заключение:\n%s", out.String())
	}
}

func TestHandle_Errors(t *testing.T) {
	h := newHandler(t, nil)

	c := console.New(strings.NewReader(""), io.Discard, ">>> ")
	if err := h.Handle(context.Background(), c, model.Theme("nand")); !errors.Is(err, quizService.ErrUnknownTheme) {
		t.Errorf("Ожидалась ErrUnknownTheme, получено %v", err)
	}

	c = console.New(strings.NewReader("11111101\n"), io.Discard, ">>> ")
	if err := h.Handle(context.Background(), c, model.ThemeNot); !errors.Is(err, io.EOF) {
		t.Errorf("Ожидался io.EOF, получено %v", err)
	}
}
