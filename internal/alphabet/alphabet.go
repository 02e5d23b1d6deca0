// Package alphabet validates caller-supplied digit alphabets and turns them
// into dense symbol→value lookup tables.
//
// Every symbol must come from the canonical set of the 94 printable ASCII
// characters other than space ('!' through '~'). An alphabet's position
// defines the digit value: alphabet[0] is zero.
package alphabet

import (
	"fmt"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// Symbols is the canonical symbol set, in ASCII order.
const Symbols = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

const (
	// MinBase is the smallest base a conversion accepts.
	MinBase = 2
	// MaxBase is the largest base, one digit per canonical symbol.
	MaxBase = len(Symbols)

	firstSymbol = '!'
	lastSymbol  = '~'

	// noDigit marks a canonical symbol that is not part of the alphabet.
	noDigit = 0xFF
)

// Preset alphabets.
const (
	Binary   = "01"
	Octal    = "01234567"
	Decimal  = "0123456789"
	HexLower = "0123456789abcdef"
	HexUpper = "0123456789ABCDEF"
	Base36   = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base62   = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Base94   = Symbols
)

// DigitMap maps every canonical symbol to its digit value in one alphabet,
// or to "not a digit". It is immutable once built.
type DigitMap struct {
	values  [MaxBase]uint8
	symbols string
}

// New validates s and builds its DigitMap.
//
// New does not enforce MinBase: a single-symbol alphabet is a valid map.
// Callers that need a radix use CheckBase first. An alphabet longer than
// MaxBase always repeats a symbol and is reported as a duplicate.
//
// Parameters:
//   - s: The alphabet, one byte per symbol.
//
// Returns:
//   - DigitMap: The lookup table.
//   - error: A ValidationError (ErrInvalidArgument) if s is empty, holds a
//     byte outside the canonical set, or repeats a symbol.
func New(s string) (DigitMap, error) {
	if len(s) == 0 {
		return DigitMap{}, apperrors.NewValidationError("alphabet", "must not be empty", s)
	}
	var m DigitMap
	for i := range m.values {
		m.values[i] = noDigit
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !IsSymbol(c) {
			return DigitMap{}, apperrors.NewValidationError("alphabet",
				fmt.Sprintf("symbol %q at position %d is not printable ASCII", c, i), s)
		}
		slot := c - firstSymbol
		if m.values[slot] != noDigit {
			return DigitMap{}, apperrors.NewValidationError("alphabet",
				fmt.Sprintf("symbol %q at position %d repeats position %d", c, i, m.values[slot]), s)
		}
		m.values[slot] = uint8(i)
	}
	m.symbols = s
	return m, nil
}

// CheckBase reports an error unless MinBase <= len(s) <= MaxBase.
func CheckBase(field, s string) error {
	if len(s) < MinBase || len(s) > MaxBase {
		return apperrors.NewValidationError(field,
			fmt.Sprintf("base %d is outside [%d, %d]", len(s), MinBase, MaxBase), s)
	}
	return nil
}

// IsSymbol reports whether c belongs to the canonical symbol set.
func IsSymbol(c byte) bool {
	return c >= firstSymbol && c <= lastSymbol
}

// Base returns the number of digits in the alphabet.
func (m DigitMap) Base() int { return len(m.symbols) }

// Value returns the digit value of c, and false when c is not a digit of
// this alphabet.
func (m DigitMap) Value(c byte) (int, bool) {
	if !IsSymbol(c) || m.symbols == "" {
		return 0, false
	}
	v := m.values[c-firstSymbol]
	if v == noDigit {
		return 0, false
	}
	return int(v), true
}

// Symbol returns the symbol for digit value v. It panics if v is not below
// Base.
func (m DigitMap) Symbol(v int) byte { return m.symbols[v] }

// String returns the alphabet the map was built from.
func (m DigitMap) String() string { return m.symbols }
