package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange значение не помещается в заданную разрядность/знаковость.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidFormat строка не является двоичным числом нужной длины.
	ErrInvalidFormat = errors.New("invalid binary format")
	// ErrUnsupportedWidth поддерживаются только 8, 16 и 32 бита.
	ErrUnsupportedWidth = errors.New("unsupported width")
)

// Width разрядность целого числа в битах.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// Valid сообщает, поддерживается ли разрядность.
func (w Width) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

func (w Width) mask() uint64 {
	return uint64(1)<<w - 1
}

// Signedness определяет интерпретацию старшего бита.
type Signedness int

const (
	Signed Signedness = iota
	Unsigned
)

func (s Signedness) String() string {
	if s == Unsigned {
		return "unsigned"
	}
	return "signed"
}

// Range возвращает допустимый диапазон значений для пары (разрядность, знаковость).
func Range(w Width, s Signedness) (min, max int64) {
	if s == Unsigned {
		return 0, int64(w.mask())
	}
	return -(int64(1) << (w - 1)), int64(1)<<(w-1) - 1
}

// FixedInt целое число фиксированной разрядности.
// Значение всегда лежит в диапазоне Range(Width, Signedness).
type FixedInt struct {
	Width      Width
	Signedness Signedness
	Value      int64
}

// New создает FixedInt с проверкой диапазона.
func New(value int64, w Width, s Signedness) (FixedInt, error) {
	const op = "codec.New"

	if !w.Valid() {
		return FixedInt{}, fmt.Errorf("%s: %d bits: %w", op, w, ErrUnsupportedWidth)
	}
	lo, hi := Range(w, s)
	if value < lo || value > hi {
		return FixedInt{}, fmt.Errorf("%s: %d not in [%d, %d]: %w", op, value, lo, hi, ErrOutOfRange)
	}
	return FixedInt{Width: w, Signedness: s, Value: value}, nil
}

// Wrap приводит произвольное значение к разрядности w по модулю 2^w,
// так же как это делает приведение типа в C.
func Wrap(value int64, w Width, s Signedness) FixedInt {
	return fromBits(uint64(value)&w.mask(), w, s)
}

// fromBits интерпретирует битовый шаблон (уже усеченный до w) как число.
func fromBits(bits uint64, w Width, s Signedness) FixedInt {
	v := int64(bits)
	if s == Signed && bits&(uint64(1)<<(w-1)) != 0 {
		v -= int64(1) << w
	}
	return FixedInt{Width: w, Signedness: s, Value: v}
}

// Bits возвращает битовый шаблон значения в дополнительном коде, усеченный до Width.
func (v FixedInt) Bits() uint64 {
	return uint64(v.Value) & v.Width.mask()
}

// Binary возвращает двоичное представление значения (старший бит первым).
func (v FixedInt) Binary() string {
	buf := make([]byte, v.Width)
	bits := v.Bits()
	for i := int(v.Width) - 1; i >= 0; i-- {
		if bits&(uint64(1)<<i) != 0 {
			buf[int(v.Width)-1-i] = '1'
		} else {
			buf[int(v.Width)-1-i] = '0'
		}
	}
	return string(buf)
}

// Reinterpret возвращает то же битовое представление с другой знаковостью.
func (v FixedInt) Reinterpret(s Signedness) FixedInt {
	return fromBits(v.Bits(), v.Width, s)
}

func (v FixedInt) String() string {
	return fmt.Sprintf("%d (%s %d-bit)", v.Value, v.Signedness, v.Width)
}

// Encode переводит значение в двоичную строку длины width.
// Для значений вне допустимого диапазона возвращает ErrOutOfRange.
func Encode(value int64, width Width, s Signedness) (string, error) {
	const op = "codec.Encode"

	v, err := New(value, width, s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return v.Binary(), nil
}

// ValidateBinary проверяет, что строка состоит ровно из width символов '0'/'1'.
func ValidateBinary(bin string, width Width) error {
	if !width.Valid() {
		return fmt.Errorf("%d bits: %w", width, ErrUnsupportedWidth)
	}
	if len(bin) != int(width) {
		return fmt.Errorf("expected %d digits, got %d: %w", width, len(bin), ErrInvalidFormat)
	}
	for i := 0; i < len(bin); i++ {
		if bin[i] != '0' && bin[i] != '1' {
			return fmt.Errorf("unexpected character %q at %d: %w", bin[i], i, ErrInvalidFormat)
		}
	}
	return nil
}

// Decode разбирает двоичную строку. Для знаковых чисел с установленным
// старшим битом результат равен magnitude - 2^width.
func Decode(bin string, width Width, s Signedness) (FixedInt, error) {
	const op = "codec.Decode"

	if err := ValidateBinary(bin, width); err != nil {
		return FixedInt{}, fmt.Errorf("%s: %w", op, err)
	}

	var magnitude uint64
	for i := 0; i < len(bin); i++ {
		magnitude <<= 1
		if bin[i] == '1' {
			magnitude |= 1
		}
	}
	return fromBits(magnitude, width, s), nil
}
