package service

import (
	"errors"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/codec"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
)

// ErrSessionComplete все вопросы сессии уже отвечены.
var ErrSessionComplete = errors.New("quiz session is complete")

// Session сессия викторины: упорядоченные вопросы и значения, из которых они построены.
// Вопросы проходятся строго по порядку, текущий вопрос меняется только после
// правильного ответа.
type Session struct {
	Theme    model.Theme
	Intro    []string        // Текст перед первым вопросом
	Outro    []string        // Текст после последнего вопроса
	Operands []model.Operand // Операнды и результаты

	questions []model.Question
	status    []model.QuestionStatus
	current   int
}

func newSession(theme model.Theme, intro []string, operands []model.Operand, questions []model.Question, outro []string) *Session {
	for i := range questions {
		questions[i].ID = i + 1
	}
	return &Session{
		Theme:     theme,
		Intro:     intro,
		Outro:     outro,
		Operands:  operands,
		questions: questions,
		status:    make([]model.QuestionStatus, len(questions)),
	}
}

// Len возвращает количество вопросов.
func (s *Session) Len() int {
	return len(s.questions)
}

// Questions возвращает копию списка вопросов.
func (s *Session) Questions() []model.Question {
	out := make([]model.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Status возвращает состояние i-го вопроса (с нуля).
func (s *Session) Status(i int) model.QuestionStatus {
	if i < 0 || i >= len(s.status) {
		return model.StatusUnanswered
	}
	return s.status[i]
}

// Current возвращает текущий неотвеченный вопрос. false – сессия завершена.
func (s *Session) Current() (model.Question, bool) {
	if s.Complete() {
		return model.Question{}, false
	}
	return s.questions[s.current], true
}

// Complete сообщает, что все вопросы отвечены.
func (s *Session) Complete() bool {
	return s.current >= len(s.questions)
}

// Submit проверяет ответ на текущий вопрос. При совпадении вопрос
// переходит в состояние answered и сессия переходит к следующему.
func (s *Session) Submit(raw string) (model.Outcome, error) {
	q, ok := s.Current()
	if !ok {
		return model.OutcomeInvalidFormat, ErrSessionComplete
	}
	outcome := CheckAnswer(q, raw)
	if outcome == model.OutcomeMatched {
		s.status[s.current] = model.StatusAnswered
		s.current++
	}
	return outcome, nil
}

// Operand возвращает значение операнда по имени.
func (s *Session) Operand(name string) (codec.FixedInt, bool) {
	for _, op := range s.Operands {
		if op.Name == name {
			return op.Value, true
		}
	}
	return codec.FixedInt{}, false
}
