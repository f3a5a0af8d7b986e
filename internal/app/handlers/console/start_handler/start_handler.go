package start_handler

import (
	"context"
	"fmt"

	messageService "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/service"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// StartHandler структура для вывода приветствия
type StartHandler struct {
	messageService *messageService.MessageService
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(messageService *messageService.MessageService) *StartHandler {
	return &StartHandler{messageService: messageService}
}

// Handle выводит приветствие
func (h *StartHandler) Handle(ctx context.Context, c *console.Console) error {
	welcome, err := h.messageService.GetMessageByKey(ctx, model.WelcomeKey)
	if err != nil {
		return fmt.Errorf("failed to retrieve welcome message: %w", err)
	}
	c.Println(welcome)
	return nil
}

// GetHandlerFunc возвращает обработчик в формате console.HandlerFunc
func (h *StartHandler) GetHandlerFunc() console.HandlerFunc {
	return h.Handle
}
