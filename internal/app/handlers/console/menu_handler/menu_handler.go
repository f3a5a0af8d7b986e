package menu_handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	messageService "github.com/IT-Nick/bitwise-tutor/internal/domain/messages/service"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"github.com/IT-Nick/bitwise-tutor/internal/infra/console"
)

// MenuHandler главное меню и подменю преобразований.
// Пункт викторины передается в обработчик точки входа с именем темы.
type MenuHandler struct {
	messageService *messageService.MessageService
}

// NewMenuHandler возвращает структуру обработчика
func NewMenuHandler(messageService *messageService.MessageService) *MenuHandler {
	return &MenuHandler{messageService: messageService}
}

// Handle показывает меню, пока пользователь не выберет выход
func (h *MenuHandler) Handle(ctx context.Context, c *console.Console) error {
	menu, err := h.messageService.GetMenu(ctx)
	if err != nil {
		return err
	}
	messages, err := h.messageService.GetMessages(ctx,
		model.MenuTitleKey, model.MenuPromptKey, model.MenuInvalidKey, model.GoodbyeKey, model.QuizFailedKey)
	if err != nil {
		return fmt.Errorf("failed to load menu messages: %w", err)
	}

	for {
		item, ok, err := h.choose(ctx, c, menu, messages[model.MenuTitleKey], messages[model.MenuPromptKey])
		if err != nil {
			return err
		}
		if !ok {
			c.Println(messages[model.MenuInvalidKey])
			continue
		}

		switch item.Action {
		case model.ActionExit:
			c.Println(messages[model.GoodbyeKey])
			return nil
		case model.ActionConversion:
			err = h.handleConversion(ctx, c)
		default:
			err = c.Dispatch(ctx, string(item.Theme))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return err
			}
			// Сбой одной викторины не завершает меню.
			c.Printf(messages[model.QuizFailedKey]+"\n", err)
		}
		c.Println()
	}
}

// handleConversion подменю преобразований. Неверный выбор возвращает в главное меню.
func (h *MenuHandler) handleConversion(ctx context.Context, c *console.Console) error {
	menu, err := h.messageService.GetConversionMenu(ctx)
	if err != nil {
		return err
	}
	messages, err := h.messageService.GetMessages(ctx,
		model.ConversionTitleKey, model.ConversionPromptKey, model.ConversionInvalidKey)
	if err != nil {
		return fmt.Errorf("failed to load conversion messages: %w", err)
	}

	c.Println()
	item, ok, err := h.choose(ctx, c, menu, messages[model.ConversionTitleKey], messages[model.ConversionPromptKey])
	if err != nil {
		return err
	}
	if !ok {
		c.Println(messages[model.ConversionInvalidKey])
		return nil
	}
	return c.Dispatch(ctx, string(item.Theme))
}

// choose выводит пункты меню и читает номер. false – номер вне диапазона или не число.
func (h *MenuHandler) choose(ctx context.Context, c *console.Console, items []model.MenuItem, title, prompt string) (model.MenuItem, bool, error) {
	c.Println(title)
	for i, item := range items {
		c.Printf("%d. %s\n", i+1, item.Label)
	}
	c.Printf(prompt, len(items))

	input, err := c.ReadLine(ctx)
	if err != nil {
		return model.MenuItem{}, false, err
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(items) {
		return model.MenuItem{}, false, nil
	}
	return items[n-1], true, nil
}

// GetHandlerFunc возвращает обработчик в формате console.HandlerFunc
func (h *MenuHandler) GetHandlerFunc() console.HandlerFunc {
	return h.Handle
}
