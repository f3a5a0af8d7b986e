package answer_handler

import (
	"context"
	"fmt"

	messageService "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/service"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	quizService "github.com/IT-Nick/bitwise-tutor/internal/domain/quiz/service"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// AnswerHandler задает текущий вопрос сессии и принимает ответы, пока ответ не будет верным
type AnswerHandler struct {
	messageService *messageService.MessageService
}

// NewAnswerHandler возвращает структуру обработчика
func NewAnswerHandler(messageService *messageService.MessageService) *AnswerHandler {
	return &AnswerHandler{messageService: messageService}
}

// sendQuestion выводит пояснения, текст вопроса с номером и варианты ответа
func (h *AnswerHandler) sendQuestion(c *console.Console, question model.Question) {
	for _, line := range question.Preamble {
		c.Println(line)
	}
	c.Printf("Q%d: %s\n", question.ID, question.Prompt)
	for i, choice := range question.Choices {
		c.Printf("%d. %s\n", i+1, choice)
	}
}

// PoseAndValidate задает текущий вопрос и повторяет ввод до правильного ответа.
// Неверный формат и неправильный ответ не ограничены по количеству попыток.
// Возвращает ошибку чтения (io.EOF, отмена контекста).
func (h *AnswerHandler) PoseAndValidate(ctx context.Context, c *console.Console, session *quizService.Session) error {
	question, ok := session.Current()
	if !ok {
		return quizService.ErrSessionComplete
	}

	messages, err := h.messageService.GetMessages(ctx,
		model.CorrectKey, model.IncorrectKey, model.InvalidBinaryKey,
		model.InvalidDecimalKey, model.InvalidChoiceKey, model.ChoicePromptKey)
	if err != nil {
		return fmt.Errorf("failed to load answer messages: %w", err)
	}

	h.sendQuestion(c, question)
	for {
		if question.Format == model.FormatChoice {
			c.Printf(messages[model.ChoicePromptKey], len(question.Choices))
		} else {
			c.Prompt()
		}

		input, err := c.ReadLine(ctx)
		if err != nil {
			return err
		}

		outcome, err := session.Submit(input)
		if err != nil {
			return err
		}

		switch outcome {
		case model.OutcomeMatched:
			if question.Confirmation != "" {
				c.Println(question.Confirmation)
			} else {
				c.Println(messages[model.CorrectKey])
			}
			return nil
		case model.OutcomeMismatch:
			c.Println(messages[model.IncorrectKey])
		default:
			c.Println(invalidFormatMessage(messages, question))
		}
	}
}

func invalidFormatMessage(messages map[string]string, question model.Question) string {
	switch question.Format {
	case model.FormatBinary:
		return fmt.Sprintf(messages[model.InvalidBinaryKey], question.Width)
	case model.FormatChoice:
		return fmt.Sprintf(messages[model.InvalidChoiceKey], len(question.Choices))
	default:
		return messages[model.InvalidDecimalKey]
	}
}
