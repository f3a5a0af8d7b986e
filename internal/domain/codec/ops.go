package codec

import "fmt"

// Операции над FixedInt. Результат всегда имеет разрядность и знаковость
// левого операнда и переносится по модулю 2^Width.

// And побитовое И.
func And(a, b FixedInt) FixedInt {
	return fromBits(a.Bits()&b.Bits(), a.Width, a.Signedness)
}

// Or побитовое ИЛИ.
func Or(a, b FixedInt) FixedInt {
	return fromBits(a.Bits()|b.Bits(), a.Width, a.Signedness)
}

// Xor побитовое исключающее ИЛИ.
func Xor(a, b FixedInt) FixedInt {
	return fromBits(a.Bits()^b.Bits(), a.Width, a.Signedness)
}

// Not инвертирует все биты. Для знаковых чисел ~v == -v-1.
func Not(a FixedInt) FixedInt {
	return fromBits(^a.Bits()&a.Width.mask(), a.Width, a.Signedness)
}

// Shl сдвиг влево, вытесненные биты теряются.
func Shl(a FixedInt, n uint) FixedInt {
	if n >= uint(a.Width) {
		return fromBits(0, a.Width, a.Signedness)
	}
	return fromBits((a.Bits()<<n)&a.Width.mask(), a.Width, a.Signedness)
}

// Shr сдвиг вправо: логический для беззнаковых, арифметический для знаковых.
func Shr(a FixedInt, n uint) FixedInt {
	if a.Signedness == Signed {
		if n >= uint(a.Width) {
			n = uint(a.Width) - 1
		}
		return Wrap(a.Value>>n, a.Width, a.Signedness)
	}
	if n >= uint(a.Width) {
		return fromBits(0, a.Width, a.Signedness)
	}
	return fromBits(a.Bits()>>n, a.Width, a.Signedness)
}

// Operator бинарная побитовая операция.
type Operator string

const (
	OpAnd Operator = "&"
	OpOr  Operator = "|"
	OpXor Operator = "^"
)

// Apply применяет оператор к паре значений.
func (op Operator) Apply(a, b FixedInt) (FixedInt, error) {
	switch op {
	case OpAnd:
		return And(a, b), nil
	case OpOr:
		return Or(a, b), nil
	case OpXor:
		return Xor(a, b), nil
	}
	return FixedInt{}, fmt.Errorf("codec: unknown operator %q", string(op))
}

// SelfCheck проверяет эталонные случаи кодека перед запуском викторин.
func SelfCheck() error {
	const op = "codec.SelfCheck"

	checks := []struct {
		value int64
		s     Signedness
		want  string
	}{
		{42, Unsigned, "00101010"},
		{-42, Signed, "11010110"},
		{-6, Signed, "11111010"},
	}
	for _, c := range checks {
		got, err := Encode(c.value, Width8, c.s)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if got != c.want {
			return fmt.Errorf("%s: encode %d: got %s, want %s", op, c.value, got, c.want)
		}
	}

	a := Wrap(5, Width8, Unsigned)
	b := Wrap(9, Width8, Unsigned)
	if And(a, b).Value != 1 || Or(a, b).Value != 13 || Xor(a, b).Value != 12 {
		return fmt.Errorf("%s: bitwise operators on 5 and 9 are broken", op)
	}
	if Not(Wrap(2, Width8, Signed)).Value != -3 || Not(Wrap(2, Width8, Unsigned)).Value != 253 {
		return fmt.Errorf("%s: bitwise NOT of 2 is broken", op)
	}
	if Not(Wrap(5, Width8, Signed)).Value != -6 {
		return fmt.Errorf("%s: bitwise NOT of 5 is broken", op)
	}
	if Shl(a, 1).Value != 10 || Shr(a, 1).Value != 2 {
		return fmt.Errorf("%s: shifts of 5 are broken", op)
	}
	return nil
}
