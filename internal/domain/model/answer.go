package model

// Outcome результат проверки ответа пользователя.
type Outcome int

const (
	// OutcomeInvalidFormat ввод не соответствует формату ответа, вопрос задается повторно.
	OutcomeInvalidFormat Outcome = iota
	// OutcomeMismatch ввод корректен, но ответ неверный.
	OutcomeMismatch
	// OutcomeMatched ответ совпал с ожидаемым.
	OutcomeMatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeMatched:
		return "matched"
	default:
		return "invalid_format"
	}
}
