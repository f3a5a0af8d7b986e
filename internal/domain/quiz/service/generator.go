package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/IT-Nick/bitwise-tutor/internal/domain/codec"
	"github.com/IT-Nick/bitwise-tutor/internal/domain/model"
)

// binaryQuestion вопрос с ответом в двоичном виде.
func binaryQuestion(prompt string, v codec.FixedInt) model.Question {
	return model.Question{
		Prompt:     prompt,
		Format:     model.FormatBinary,
		Width:      v.Width,
		Signedness: v.Signedness,
		Expected:   v.Value,
		Binary:     v.Binary(),
	}
}

// decimalQuestion вопрос с ответом в десятичном виде.
func decimalQuestion(prompt string, v codec.FixedInt) model.Question {
	return model.Question{
		Prompt:     prompt,
		Format:     model.FormatDecimal,
		Width:      v.Width,
		Signedness: v.Signedness,
		Expected:   v.Value,
	}
}

// bitwiseQuiz викторина по AND/OR/XOR над двумя знаковыми 8-битными числами.
func (s *QuizService) bitwiseQuiz(theme model.Theme, op codec.Operator, params *QuizParams) (*Session, error) {
	var a, b codec.FixedInt
	if ops := params.operands(); len(ops) > 0 {
		if len(ops) != 2 {
			return nil, fmt.Errorf("%w: expected 2 operands, got %d", ErrInvalidParams, len(ops))
		}
		var err error
		if a, err = explicit(ops[0], codec.Width8, codec.Signed); err != nil {
			return nil, err
		}
		if b, err = explicit(ops[1], codec.Width8, codec.Signed); err != nil {
			return nil, err
		}
	} else {
		a = s.drawSigned8()
		b = s.drawSigned8()
	}

	result, err := op.Apply(a, b)
	if err != nil {
		return nil, err
	}
	expr := "a" + string(op) + "b"

	intro := []string{
		"The following questions are about signed 8-bit integers *a* and *b*.",
		"Negative values are written in 8-bit two's complement.",
		fmt.Sprintf("Given `a=%d` and `b=%d`,", a.Value, b.Value),
	}
	questions := []model.Question{
		binaryQuestion(fmt.Sprintf("What is the binary representation of `%d`?", a.Value), a),
		binaryQuestion(fmt.Sprintf("What is the binary representation of `%d`?", b.Value), b),
		binaryQuestion(fmt.Sprintf("What is the result of `%s` in binary?", expr), result),
		decimalQuestion(fmt.Sprintf("What is the result of `%s` in decimal?", expr), result),
	}
	operands := []model.Operand{
		{Name: "a", Value: a},
		{Name: "b", Value: b},
		{Name: expr, Value: result},
	}
	return newSession(theme, intro, operands, questions, nil), nil
}

// notQuiz показывает, что одна и та же инверсия битов дает разные десятичные
// значения для знакового и беззнакового типа.
func (s *QuizService) notQuiz(ctx context.Context, params *QuizParams) (*Session, error) {
	demo, err := s.demoRepo.GetNotDemo(ctx)
	if err != nil {
		return nil, err
	}
	value := demo.Operand
	if ops := params.operands(); len(ops) > 0 {
		value = ops[0]
	}

	a, err := explicit(value, codec.Width8, codec.Signed)
	if err != nil {
		return nil, err
	}
	b, err := explicit(value, codec.Width8, codec.Unsigned)
	if err != nil {
		return nil, err
	}
	notA := codec.Not(a)
	notB := codec.Not(b)

	intro := []string{
		"The following questions are about the bitwise NOT operator with different integer types.",
		fmt.Sprintf("Given signed int `a=%d` and unsigned int `b=%d`,", a.Value, b.Value),
		"",
		fmt.Sprintf("a (signed) in binary: %s", a.Binary()),
		fmt.Sprintf("b (unsigned) in binary: %s", b.Binary()),
	}
	questions := []model.Question{
		binaryQuestion("What is `~a` in binary? (a is signed)", notA),
		decimalQuestion("What is `~a` in decimal? (a is signed)", notA),
		binaryQuestion("What is `~b` in binary? (b is unsigned)", notB),
		decimalQuestion("What is `~b` in decimal? (b is unsigned)", notB),
	}

	outro := []string{
		"Did you notice the difference?",
		fmt.Sprintf("~%d (signed) = %d, while ~%d (unsigned) = %d", a.Value, notA.Value, b.Value, notB.Value),
	}
	outro = append(outro, demo.Notes...)
	outro = append(outro,
		"",
		fmt.Sprintf("To verify: The binary representation of %d is %s", a.Value, a.Binary()),
		fmt.Sprintf("Applying ~ gives us %s (which is %d in decimal)", notA.Binary(), notA.Value),
		fmt.Sprintf("This matches our expectation since ~%d = %d for signed 8-bit integers.", a.Value, notA.Value),
	)

	operands := []model.Operand{
		{Name: "a", Value: a},
		{Name: "b", Value: b},
		{Name: "~a", Value: notA},
		{Name: "~b", Value: notB},
	}
	return newSession(model.ThemeNot, intro, operands, questions, outro), nil
}

// shiftQuiz викторина по логическим сдвигам беззнакового 8-битного числа.
func (s *QuizService) shiftQuiz(params *QuizParams) (*Session, error) {
	var a codec.FixedInt
	if ops := params.operands(); len(ops) > 0 {
		var err error
		if a, err = explicit(ops[0], codec.Width8, codec.Unsigned); err != nil {
			return nil, err
		}
	} else {
		// Не больше 7 значащих битов, чтобы вытесненные биты были видны.
		a = codec.Wrap(int64(s.rng.Intn(128)), codec.Width8, codec.Unsigned)
	}

	var left, right uint
	if params != nil {
		left, right = params.LeftShift, params.RightShift
	}
	if err := checkShift(left); err != nil {
		return nil, err
	}
	if err := checkShift(right); err != nil {
		return nil, err
	}
	if left == 0 {
		left = s.drawShift()
	}
	if right == 0 {
		right = s.drawShift()
	}

	shl := codec.Shl(a, left)
	shr := codec.Shr(a, right)

	intro := []string{
		"The following questions are about shifting unsigned 8-bit integer a bitwise.",
		fmt.Sprintf("Given a = %d", a.Value),
	}
	questions := []model.Question{
		binaryQuestion(fmt.Sprintf("What is the binary representation of %d?", a.Value), a),
		binaryQuestion(fmt.Sprintf("What is the binary result of a << %d?", left), shl),
		decimalQuestion(fmt.Sprintf("What is the decimal result of a << %d?", left), shl),
		binaryQuestion(fmt.Sprintf("What is the binary result of a >> %d?", right), shr),
		decimalQuestion(fmt.Sprintf("What is the decimal result of a >> %d?", right), shr),
	}
	operands := []model.Operand{
		{Name: "a", Value: a},
		{Name: fmt.Sprintf("a<<%d", left), Value: shl},
		{Name: fmt.Sprintf("a>>%d", right), Value: shr},
	}
	return newSession(model.ThemeShift, intro, operands, questions, nil), nil
}

// binaryFirstQuiz операнды даны в двоичном виде, спрашиваются a&b и десятичные значения.
func (s *QuizService) binaryFirstQuiz(ctx context.Context, params *QuizParams) (*Session, error) {
	demo, err := s.demoRepo.GetBinaryFirstDemo(ctx)
	if err != nil {
		return nil, err
	}
	aBin, bBin := demo.A, demo.B
	if p := params.patterns(); len(p) > 0 {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: expected 2 patterns, got %d", ErrInvalidParams, len(p))
		}
		aBin, bBin = p[0], p[1]
	}

	a, err := codec.Decode(aBin, codec.Width8, codec.Signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	b, err := codec.Decode(bBin, codec.Width8, codec.Signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	result := codec.And(a, b)

	intro := []string{
		"The following questions are about signed 8-bit integers *a* and *b*.",
		fmt.Sprintf("Given `a=%s` and `b=%s` in binary,", aBin, bBin),
	}
	questions := []model.Question{
		binaryQuestion("What is `a&b` in binary?", result),
		decimalQuestion("What is `a` in decimal?", a),
		decimalQuestion("What is `b` in decimal?", b),
	}
	operands := []model.Operand{
		{Name: "a", Value: a},
		{Name: "b", Value: b},
		{Name: "a&b", Value: result},
	}
	return newSession(model.ThemeBinaryFirst, intro, operands, questions, nil), nil
}

// decimalToBinaryQuiz перевод знакового числа из [-50, 49] и его модуля в двоичный вид.
func (s *QuizService) decimalToBinaryQuiz(params *QuizParams) (*Session, error) {
	var signed codec.FixedInt
	if ops := params.operands(); len(ops) > 0 {
		var err error
		if signed, err = explicit(ops[0], codec.Width8, codec.Signed); err != nil {
			return nil, err
		}
	} else {
		signed = codec.Wrap(int64(s.rng.Intn(100))-50, codec.Width8, codec.Signed)
	}

	abs := signed.Value
	if abs < 0 {
		abs = -abs
	}
	unsigned, err := explicit(abs, codec.Width8, codec.Unsigned)
	if err != nil {
		return nil, err
	}

	q1 := binaryQuestion(fmt.Sprintf("Convert the signed decimal %d to 8-bit binary representation.", signed.Value), signed)
	q1.Confirmation = fmt.Sprintf("Correct! %d in binary is %s", signed.Value, signed.Binary())
	q2 := binaryQuestion(fmt.Sprintf("Convert the unsigned decimal %d to 8-bit binary representation.", unsigned.Value), unsigned)
	q2.Confirmation = fmt.Sprintf("Correct! %d in binary is %s", unsigned.Value, unsigned.Binary())

	intro := []string{"=== Decimal to Binary Conversion ==="}
	operands := []model.Operand{
		{Name: "signed", Value: signed},
		{Name: "unsigned", Value: unsigned},
	}
	return newSession(model.ThemeDecimalToBinary, intro, operands, []model.Question{q1, q2}, nil), nil
}

// binaryToDecimalQuiz перевод одного двоичного шаблона в беззнаковое и знаковое число.
func (s *QuizService) binaryToDecimalQuiz(ctx context.Context, params *QuizParams) (*Session, error) {
	demo, err := s.demoRepo.GetConversionDemo(ctx)
	if err != nil {
		return nil, err
	}
	pattern := demo.Pattern
	if p := params.patterns(); len(p) > 0 {
		pattern = p[0]
	}

	unsigned, err := codec.Decode(pattern, codec.Width8, codec.Unsigned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	signed := unsigned.Reinterpret(codec.Signed)

	q1 := decimalQuestion(fmt.Sprintf("What is the decimal value of %s when interpreted as an unsigned 8-bit integer?", pattern), unsigned)
	q1.Confirmation = fmt.Sprintf("Correct! %s as an unsigned integer is %d", pattern, unsigned.Value)
	q2 := decimalQuestion(fmt.Sprintf("What is the decimal value of %s when interpreted as a signed 8-bit integer?", pattern), signed)
	q2.Confirmation = fmt.Sprintf("Correct! %s as a signed integer is %d", pattern, signed.Value)

	intro := []string{
		"=== Binary to Decimal Conversion ===",
		fmt.Sprintf("Given the binary number: %s", pattern),
	}
	operands := []model.Operand{
		{Name: "unsigned", Value: unsigned},
		{Name: "signed", Value: signed},
	}
	return newSession(model.ThemeBinaryToDecimal, intro, operands, []model.Question{q1, q2}, nil), nil
}

// interpretationsQuiz один и тот же шаблон как беззнаковое и знаковое число.
// Вопрос с вариантами задается только для первых AskFirst шаблонов.
func (s *QuizService) interpretationsQuiz(ctx context.Context, params *QuizParams) (*Session, error) {
	demo, err := s.demoRepo.GetInterpretationsDemo(ctx)
	if err != nil {
		return nil, err
	}
	patterns := demo.Patterns
	if p := params.patterns(); len(p) > 0 {
		patterns = p
	}

	var (
		questions []model.Question
		operands  []model.Operand
		outro     []string
	)
	for i, pattern := range patterns {
		unsigned, err := codec.Decode(pattern, codec.Width8, codec.Unsigned)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
		}
		signed := unsigned.Reinterpret(codec.Signed)
		operands = append(operands,
			model.Operand{Name: pattern + "/unsigned", Value: unsigned},
			model.Operand{Name: pattern + "/signed", Value: signed},
		)

		display := []string{
			fmt.Sprintf("Binary pattern: %s", pattern),
			fmt.Sprintf("As unsigned 8-bit integer: %d", unsigned.Value),
			fmt.Sprintf("As signed 8-bit integer: %d", signed.Value),
			"",
		}
		if i >= demo.AskFirst {
			outro = append(outro, display...)
			continue
		}
		questions = append(questions, model.Question{
			Preamble:     display,
			Prompt:       fmt.Sprintf("Why does the binary pattern %s represent different values?", pattern),
			Format:       model.FormatChoice,
			Width:        codec.Width8,
			Expected:     int64(demo.Correct),
			Choices:      demo.Choices,
			Confirmation: strings.Join(demo.Answer, "\n"),
		})
	}
	outro = append(outro, demo.Insights...)

	intro := []string{
		"=== Same Binary, Different Interpretations ===",
		"This quiz demonstrates how the same binary pattern can represent",
		"different values depending on whether it's interpreted as signed or unsigned.",
	}
	return newSession(model.ThemeInterpretations, intro, operands, questions, outro), nil
}
