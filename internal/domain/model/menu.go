package model

// Ключи сообщений каталога. Привязаны к messages.yaml.
// Не следует добавлять/изменять константы без изменения каталога.
const (
	WelcomeKey           = "welcome"
	GoodbyeKey           = "goodbye"
	MenuTitleKey         = "menu_title"
	MenuPromptKey        = "menu_prompt"
	MenuInvalidKey       = "menu_invalid"
	ConversionTitleKey   = "conversion_title"
	ConversionPromptKey  = "conversion_prompt"
	ConversionInvalidKey = "conversion_invalid"
	CorrectKey           = "correct"
	IncorrectKey         = "incorrect"
	InvalidBinaryKey     = "invalid_binary"
	InvalidDecimalKey    = "invalid_decimal"
	InvalidChoiceKey     = "invalid_choice"
	ChoicePromptKey      = "choice_prompt"
	QuizFailedKey        = "quiz_failed"
)

// MenuAction действие пункта меню.
type MenuAction string

const (
	ActionQuiz       MenuAction = "quiz"
	ActionConversion MenuAction = "conversion"
	ActionExit       MenuAction = "exit"
)

// MenuItem пункт меню.
type MenuItem struct {
	Label  string     `yaml:"label"`
	Action MenuAction `yaml:"action"`
	Theme  Theme      `yaml:"theme,omitempty"`
}
