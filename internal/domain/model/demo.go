package model

// NotDemo данные викторины по оператору NOT.
type NotDemo struct {
	Operand int64    `yaml:"operand"`
	Notes   []string `yaml:"notes"`
}

// BinaryFirstDemo операнды викторины "двоичные значения даны".
type BinaryFirstDemo struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// ConversionDemo шаблон для перевода двоичного числа в десятичное.
type ConversionDemo struct {
	Pattern string `yaml:"pattern"`
}

// InterpretationsDemo набор шаблонов "один шаблон, разные значения".
type InterpretationsDemo struct {
	Patterns []string `yaml:"patterns"`
	AskFirst int      `yaml:"ask_first"` // Вопрос задается только для первых AskFirst шаблонов
	Choices  []string `yaml:"choices"`
	Correct  int      `yaml:"correct"` // Номер правильного варианта, начиная с 1
	Answer   []string `yaml:"answer"`
	Insights []string `yaml:"insights"`
}
