package service

import (
	"context"
	"fmt"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/messages/repository"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
)

// MessageService содержит логику для работы с сообщениями
type MessageService struct {
	messageRepo *repository.MessageRepository
}

// NewMessageService создает новый экземпляр MessageService
func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// GetMessageByKey возвращает сообщение по ключу из каталога
func (s *MessageService) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	message, err := s.messageRepo.GetMessageByKey(ctx, messageKey)
	if err != nil {
		return "", fmt.Errorf("failed to get message by key: %w", err)
	}
	return message, nil
}

// FormatMessage подставляет аргументы в шаблон сообщения
func (s *MessageService) FormatMessage(ctx context.Context, messageKey string, args ...any) (string, error) {
	message, err := s.GetMessageByKey(ctx, messageKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(message, args...), nil
}

// GetMenu возвращает главное меню
func (s *MessageService) GetMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.messageRepo.GetMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return items, nil
}

// GetConversionMenu возвращает подменю преобразований
func (s *MessageService) GetConversionMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.messageRepo.GetConversionMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion menu: %w", err)
	}
	return items, nil
}

// GetMessages возвращает тексты для набора ключей
func (s *MessageService) GetMessages(ctx context.Context, keys ...string) (map[string]string, error) {
	messages := make(map[string]string, len(keys))
	for _, key := range keys {
		text, err := s.messageRepo.GetMessageByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get message text for key %s: %w", key, err)
		}
		messages[key] = text
	}
	return messages, nil
}
