package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/codec"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
)

// CheckAnswer сравнивает ввод пользователя с ожидаемым ответом вопроса.
// Функция чистая: для одной и той же пары (вопрос, ввод) результат всегда одинаков.
// Синтаксически неверный ввод дает OutcomeInvalidFormat и никогда не считается
// неправильным ответом.
func CheckAnswer(q model.Question, raw string) model.Outcome {
	input := strings.TrimSpace(raw)

	switch q.Format {
	case model.FormatBinary:
		if err := codec.ValidateBinary(input, q.Width); err != nil {
			return model.OutcomeInvalidFormat
		}
		if input == q.Binary {
			return model.OutcomeMatched
		}
		return model.OutcomeMismatch

	case model.FormatDecimal:
		value, ok := parseDecimal(input, q.Signedness)
		if !ok {
			return model.OutcomeInvalidFormat
		}
		if value == q.Expected {
			return model.OutcomeMatched
		}
		return model.OutcomeMismatch

	case model.FormatChoice:
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Choices) {
			return model.OutcomeInvalidFormat
		}
		if int64(n) == q.Expected {
			return model.OutcomeMatched
		}
		return model.OutcomeMismatch
	}

	return model.OutcomeInvalidFormat
}

// parseDecimal разбирает десятичное число; для беззнаковых вопросов знак минус недопустим.
func parseDecimal(input string, s codec.Signedness) (int64, bool) {
	if s == codec.Unsigned {
		u, err := strconv.ParseUint(input, 10, 64)
		if err != nil || u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
