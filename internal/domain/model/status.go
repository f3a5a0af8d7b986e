package model

// QuestionStatus состояние вопроса внутри сессии.
// Переход возможен только Unanswered -> Answered.
type QuestionStatus int

const (
	StatusUnanswered QuestionStatus = iota
	StatusAnswered
)

func (s QuestionStatus) String() string {
	if s == StatusAnswered {
		return "answered"
	}
	return "unanswered"
}
