package model

// Theme тема викторины.
type Theme string

const (
	ThemeAnd             Theme = "and"
	ThemeOr              Theme = "or"
	ThemeXor             Theme = "xor"
	ThemeNot             Theme = "not"
	ThemeShift           Theme = "shift"
	ThemeBinaryFirst     Theme = "binary_first"
	ThemeDecimalToBinary Theme = "dec_to_bin"
	ThemeBinaryToDecimal Theme = "bin_to_dec"
	ThemeInterpretations Theme = "interpretations"
)

// Themes все поддерживаемые темы в порядке меню.
var Themes = []Theme{
	ThemeAnd,
	ThemeBinaryFirst,
	ThemeXor,
	ThemeOr,
	ThemeNot,
	ThemeDecimalToBinary,
	ThemeBinaryToDecimal,
	ThemeInterpretations,
	ThemeShift,
}

// Valid сообщает, известна ли тема.
func (t Theme) Valid() bool {
	for _, th := range Themes {
		if th == t {
			return true
		}
	}
	return false
}
