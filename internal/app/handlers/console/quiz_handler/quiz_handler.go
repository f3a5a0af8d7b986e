package quiz_handler

import (
	"context"
	"fmt"

	"github.com/IT-Nick/bitwise-tutor/internal/app/handlers/console/answer_handler"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	quizService "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/service"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// QuizHandler проводит одну викторину по теме от вступления до заключения
type QuizHandler struct {
	quizService   *quizService.QuizService
	answerHandler *answer_handler.AnswerHandler
	params        *quizService.QuizParams
}

// NewQuizHandler возвращает структуру обработчика. params может быть nil.
func NewQuizHandler(
	quizService *quizService.QuizService,
	answerHandler *answer_handler.AnswerHandler,
	params *quizService.QuizParams,
) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		answerHandler: answerHandler,
		params:        params,
	}
}

// Handle генерирует сессию викторины и задает вопросы по порядку
func (h *QuizHandler) Handle(ctx context.Context, c *console.Console, theme model.Theme) error {
	session, err := h.quizService.GenerateQuiz(ctx, theme, h.params)
	if err != nil {
		return fmt.Errorf("quiz %s: %w", theme, err)
	}

	c.Println()
	for _, line := range session.Intro {
		c.Println(line)
	}

	for !session.Complete() {
		c.Println()
		if err := h.answerHandler.PoseAndValidate(ctx, c, session); err != nil {
			return err
		}
	}

	if len(session.Outro) > 0 {
		c.Println()
		for _, line := range session.Outro {
			c.Println(line)
		}
	}
	c.Println()
	return nil
}

// GetHandlerFunc возвращает обработчик темы в формате console.HandlerFunc
func (h *QuizHandler) GetHandlerFunc(theme model.Theme) console.HandlerFunc {
	return func(ctx context.Context, c *console.Console) error {
		return h.Handle(ctx, c, theme)
	}
}
