package model

import "github.com/IT-Nick/bitwise-tutor/internal/domain/codec"

// AnswerFormat формат, в котором пользователь вводит ответ.
type AnswerFormat string

const (
	FormatBinary  AnswerFormat = "binary"
	FormatDecimal AnswerFormat = "decimal"
	FormatChoice  AnswerFormat = "choice"
)

// Question представляет вопрос викторины. Ожидаемый ответ вычисляется при генерации.
type Question struct {
	ID           int
	Preamble     []string     // Строки, выводимые перед вопросом
	Prompt       string       // Текст вопроса
	Format       AnswerFormat // "binary", "decimal", "choice"
	Width        codec.Width
	Signedness   codec.Signedness
	Expected     int64    // Ожидаемое значение (для choice – номер варианта, начиная с 1)
	Binary       string   // Ожидаемая двоичная строка (только для FormatBinary)
	Choices      []string // Варианты ответа (только для FormatChoice)
	Confirmation string   // Сообщение после правильного ответа; пусто – стандартное
}

// Operand именованное значение, из которого построены вопросы (a, b, a&b, ~a...).
type Operand struct {
	Name  string
	Value codec.FixedInt
}
