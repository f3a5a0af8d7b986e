package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
)

// TestNewMessageRepository_Embedded проверяет, что встроенный каталог содержит все ключи.
func TestNewMessageRepository_Embedded(t *testing.T) {
	repo, err := NewMessageRepository()
	if err != nil {
		t.Fatalf("NewMessageRepository вернул ошибку: %v", err)
	}
	ctx := context.Background()

	keys := []string{
		model.WelcomeKey, model.GoodbyeKey, model.MenuTitleKey, model.MenuPromptKey,
		model.MenuInvalidKey, model.ConversionTitleKey, model.ConversionPromptKey,
		model.ConversionInvalidKey, model.CorrectKey, model.IncorrectKey,
		model.InvalidBinaryKey, model.InvalidDecimalKey, model.InvalidChoiceKey,
		model.ChoicePromptKey, model.QuizFailedKey,
	}
	for _, key := range keys {
		text, err := repo.GetMessageByKey(ctx, key)
		if err != nil {
			t.Errorf("Ключ %s: %v", key, err)
			continue
		}
		if text == "" {
			t.Errorf("Ключ %s: пустой текст", key)
		}
	}

	menu, err := repo.GetMenu(ctx)
	if err != nil {
		t.Fatalf("GetMenu вернул ошибку: %v", err)
	}
	wantActions := []model.MenuAction{
		model.ActionQuiz, model.ActionQuiz, model.ActionQuiz, model.ActionQuiz,
		model.ActionQuiz, model.ActionConversion, model.ActionQuiz, model.ActionExit,
	}
	if len(menu) != len(wantActions) {
		t.Fatalf("Ожидалось %d пунктов меню, получено %d", len(wantActions), len(menu))
	}
	for i, action := range wantActions {
		if menu[i].Action != action {
			t.Errorf("Пункт %d: действие %s, ожидалось %s", i+1, menu[i].Action, action)
		}
	}
	if menu[0].Theme != model.ThemeAnd || menu[1].Theme != model.ThemeBinaryFirst || menu[6].Theme != model.ThemeShift {
		t.Errorf("Неожиданный порядок тем: %+v", menu)
	}

	conv, err := repo.GetConversionMenu(ctx)
	if err != nil {
		t.Fatalf("GetConversionMenu вернул ошибку: %v", err)
	}
	wantThemes := []model.Theme{model.ThemeDecimalToBinary, model.ThemeBinaryToDecimal, model.ThemeInterpretations}
	if len(conv) != len(wantThemes) {
		t.Fatalf("Ожидалось %d пунктов подменю, получено %d", len(wantThemes), len(conv))
	}
	for i, theme := range wantThemes {
		if conv[i].Theme != theme {
			t.Errorf("Подменю %d: тема %s, ожидалась %s", i+1, conv[i].Theme, theme)
		}
	}
}

func TestGetMessageByKey_NotFound(t *testing.T) {
	repo, err := NewMessageRepository()
	if err != nil {
		t.Fatalf("NewMessageRepository вернул ошибку: %v", err)
	}
	if _, err := repo.GetMessageByKey(context.Background(), "no_such_key"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("Ожидалась ErrMessageNotFound, получено %v", err)
	}
}

func TestGetMenu_ReturnsCopy(t *testing.T) {
	repo, err := NewMessageRepository()
	if err != nil {
		t.Fatalf("NewMessageRepository вернул ошибку: %v", err)
	}
	ctx := context.Background()
	menu, _ := repo.GetMenu(ctx)
	menu[0].Label = "changed"

	again, _ := repo.GetMenu(ctx)
	if again[0].Label == "changed" {
		t.Error("GetMenu должен возвращать копию")
	}
}

func TestNewMessageRepositoryFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken yaml", "messages: [unclosed"},
		{"empty menu", "messages:\n  welcome: hi\n"},
		{"unknown theme", "menu:\n  - label: x\n    action: quiz\n    theme: nand\n"},
		{"unknown action", "menu:\n  - label: x\n    action: dance\n"},
		{"conversion without submenu", "menu:\n  - label: x\n    action: conversion\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMessageRepositoryFromYAML([]byte(tt.data)); err == nil {
				t.Error("Ожидалась ошибка")
			}
		})
	}
}

func TestGetMessageByKey_CanceledContext(t *testing.T) {
	repo, err := NewMessageRepository()
	if err != nil {
		t.Fatalf("NewMessageRepository вернул ошибку: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.GetMessageByKey(ctx, model.WelcomeKey); !errors.Is(err, context.Canceled) {
		t.Errorf("Ожидалась context.Canceled, получено %v", err)
	}
}
