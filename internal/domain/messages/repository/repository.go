package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

// ErrMessageNotFound сообщение с указанным ключом отсутствует в каталоге
var ErrMessageNotFound = errors.New("message not found")

type messageCatalog struct {
	Messages       map[string]string `yaml:"messages"`
	Menu           []model.MenuItem  `yaml:"menu"`
	ConversionMenu []model.MenuItem  `yaml:"conversion_menu"`
}

// MessageRepository реализация каталога сообщений
type MessageRepository struct {
	catalog messageCatalog
}

// NewMessageRepository создает новый экземпляр MessageRepository из встроенного messages.yaml
func NewMessageRepository() (*MessageRepository, error) {
	return NewMessageRepositoryFromYAML(defaultMessages)
}

// NewMessageRepositoryFromYAML создает репозиторий из произвольного YAML-документа
func NewMessageRepositoryFromYAML(data []byte) (*MessageRepository, error) {
	var catalog messageCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid message catalog: %w", err)
	}
	return &MessageRepository{catalog: catalog}, nil
}

func (c messageCatalog) validate() error {
	if len(c.Menu) == 0 {
		return errors.New("empty main menu")
	}
	for i, items := range [][]model.MenuItem{c.Menu, c.ConversionMenu} {
		for _, item := range items {
			switch item.Action {
			case model.ActionQuiz:
				if !item.Theme.Valid() {
					return fmt.Errorf("menu %d: item %q: unknown theme %q", i, item.Label, item.Theme)
				}
			case model.ActionConversion:
				if len(c.ConversionMenu) == 0 {
					return fmt.Errorf("menu %d: item %q: conversion menu is empty", i, item.Label)
				}
			case model.ActionExit:
			default:
				return fmt.Errorf("menu %d: item %q: unknown action %q", i, item.Label, item.Action)
			}
		}
	}
	return nil
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *MessageRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := r.catalog.Messages[messageKey]
	if !ok {
		return "", fmt.Errorf("message with key %s: %w", messageKey, ErrMessageNotFound)
	}
	return text, nil
}

// GetMenu возвращает пункты главного меню
func (r *MessageRepository) GetMenu(ctx context.Context) ([]model.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.MenuItem(nil), r.catalog.Menu...), nil
}

// GetConversionMenu возвращает пункты подменю преобразований
func (r *MessageRepository) GetConversionMenu(ctx context.Context) ([]model.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.MenuItem(nil), r.catalog.ConversionMenu...), nil
}
