// Package conversion converts digit strings between arbitrary bases.
//
// Parse reads a string into a bigint.Int with Horner's method, Render writes
// a bigint.Int back out by repeated scalar division, and Convert composes the
// two. None of these functions log or retain state; every call owns its
// working values.
package conversion

import (
	"fmt"
	"math"
	"slices"

	"github.com/agbru/baseconv/internal/alphabet"
	"github.com/agbru/baseconv/internal/bigint"
	apperrors "github.com/agbru/baseconv/internal/errors"
)

// Convert re-encodes input, written with the symbols of inputAlphabet, using
// the symbols of outputAlphabet. The base of each side is the length of its
// alphabet. The result carries no leading zero digits except for zero itself.
//
// Parameters:
//   - input: The digit string to convert.
//   - inputAlphabet: The symbols of the input base, lowest value first.
//   - outputAlphabet: The symbols of the output base, lowest value first.
//
// Returns:
//   - string: The converted digit string.
//   - error: The first error from Parse or Render, unchanged.
func Convert(input, inputAlphabet, outputAlphabet string) (string, error) {
	value, err := Parse(input, inputAlphabet)
	if err != nil {
		return "", err
	}
	return Render(value, outputAlphabet)
}

// Parse reads input as a number written in inputAlphabet.
// Leading zero digits are accepted.
//
// Parameters:
//   - input: A non-empty digit string.
//   - inputAlphabet: An alphabet of MinBase to MaxBase distinct canonical symbols.
//
// Returns:
//   - bigint.Int: The parsed value.
//   - error: ErrInvalidArgument for an empty input, a bad alphabet or a symbol
//     missing from the alphabet; ErrAllocationFailure from the kernel.
func Parse(input, inputAlphabet string) (bigint.Int, error) {
	if len(input) == 0 {
		return bigint.Int{}, apperrors.NewValidationError("input", "must not be empty", input)
	}
	if err := alphabet.CheckBase("inputAlphabet", inputAlphabet); err != nil {
		return bigint.Int{}, err
	}
	digits, err := alphabet.New(inputAlphabet)
	if err != nil {
		return bigint.Int{}, err
	}

	base := bigint.Word(digits.Base())
	var acc bigint.Int
	for i := 0; i < len(input); i++ {
		v, ok := digits.Value(input[i])
		if !ok {
			return bigint.Int{}, apperrors.NewValidationError("input",
				fmt.Sprintf("symbol %q at position %d is not a digit of the base-%d alphabet", input[i], i, base), input)
		}
		if i == 0 {
			acc = bigint.FromWord(bigint.Word(v))
			continue
		}
		if acc, err = bigint.MulScalar(acc, base); err != nil {
			return bigint.Int{}, err
		}
		if acc, err = bigint.AddScalar(acc, bigint.Word(v)); err != nil {
			return bigint.Int{}, err
		}
	}
	return acc, nil
}

// Render writes value using outputAlphabet. Digits come out of the division
// loop least significant first and are reversed at the end. Zero renders as
// the single symbol outputAlphabet[0].
//
// Parameters:
//   - value: The number to render.
//   - outputAlphabet: An alphabet of MinBase to MaxBase distinct canonical symbols.
//
// Returns:
//   - string: The digit string.
//   - error: ErrInvalidArgument for a bad alphabet; ErrAllocationFailure from
//     the kernel.
func Render(value bigint.Int, outputAlphabet string) (string, error) {
	if err := alphabet.CheckBase("outputAlphabet", outputAlphabet); err != nil {
		return "", err
	}
	digits, err := alphabet.New(outputAlphabet)
	if err != nil {
		return "", err
	}

	base := bigint.Word(digits.Base())
	out := make([]byte, 0, renderedLen(value, digits.Base()))
	current := value
	for {
		d, err := bigint.DivScalar(current, base)
		if err != nil {
			return "", err
		}
		out = append(out, digits.Symbol(int(d.Remainder)))
		current = d.Quotient
		if current.IsZero() {
			break
		}
	}
	slices.Reverse(out)
	return string(out), nil
}

// renderedLen is an upper bound on the number of digits of value in base.
func renderedLen(value bigint.Int, base int) int {
	return int(float64(value.Len()*bigint.LimbBits)/math.Log2(float64(base))) + 1
}
