// Package baseconv converts non-negative integers written in one numeral
// base into another, for any base from 2 to 94.
//
// A base is described by its alphabet: a string of distinct symbols drawn
// from the printable ASCII characters '!' through '~', where the symbol at
// index i denotes digit value i. The alphabet's length is the base.
//
//	out, err := baseconv.Convert("255", baseconv.Decimal, baseconv.HexLower)
//	// out == "ff"
//
// Leading zero symbols in the input are accepted and dropped from the
// output; zero is written as the first symbol of the output alphabet.
// Failures are classified by ErrInvalidArgument and ErrAllocationFailure,
// which callers test with errors.Is.
package baseconv

import (
	"io"

	"github.com/agbru/baseconv/internal/alphabet"
	"github.com/agbru/baseconv/internal/config"
	"github.com/agbru/baseconv/internal/conversion"
	apperrors "github.com/agbru/baseconv/internal/errors"
)

// Error kinds returned by every conversion.
var (
	// ErrInvalidArgument reports an empty input, an invalid alphabet or
	// an input symbol that is not in the input alphabet.
	ErrInvalidArgument = apperrors.ErrInvalidArgument
	// ErrAllocationFailure reports that an intermediate value was too
	// large to be stored.
	ErrAllocationFailure = apperrors.ErrAllocationFailure
)

// Base limits.
const (
	MinBase = alphabet.MinBase
	MaxBase = alphabet.MaxBase
)

// Preset alphabets.
const (
	Binary   = alphabet.Binary
	Octal    = alphabet.Octal
	Decimal  = alphabet.Decimal
	HexLower = alphabet.HexLower
	HexUpper = alphabet.HexUpper
	Base36   = alphabet.Base36
	Base62   = alphabet.Base62
	Base94   = alphabet.Base94
)

type (
	// Converter is a reusable converter with an input limit and observers.
	Converter = conversion.Converter
	// Option configures a Converter.
	Option = conversion.Option
	// ConversionEvent describes one finished conversion.
	ConversionEvent = conversion.ConversionEvent
	// ConversionObserver receives a ConversionEvent after every conversion.
	ConversionObserver = conversion.ConversionObserver
)

// WithObserver registers an observer on a Converter.
func WithObserver(o ConversionObserver) Option { return conversion.WithObserver(o) }

// WithMaxInputLength limits the input length of a Converter. Zero removes
// the limit.
func WithMaxInputLength(n int) Option { return conversion.WithMaxInputLength(n) }

// Convert rewrites input, a numeral over inputAlphabet, as a numeral over
// outputAlphabet. On failure it returns "" and an error matching
// ErrInvalidArgument or ErrAllocationFailure.
func Convert(input, inputAlphabet, outputAlphabet string) (string, error) {
	return conversion.Convert(input, inputAlphabet, outputAlphabet)
}

// ValidateAlphabet reports whether s is usable as an alphabet: between
// MinBase and MaxBase distinct symbols from '!'..'~'.
func ValidateAlphabet(s string) error {
	if err := alphabet.CheckBase("alphabet", s); err != nil {
		return err
	}
	_, err := alphabet.New(s)
	return err
}

// NewConverter returns a Converter with the default input limit and the
// given options applied.
func NewConverter(opts ...Option) *Converter {
	return conversion.NewConverter(opts...)
}

// NewConverterFromEnv returns a Converter configured from the BASECONV_*
// environment variables, logging conversions to w. Extra options are
// applied after the environment.
func NewConverterFromEnv(w io.Writer, opts ...Option) (*Converter, error) {
	envOpts, err := config.FromEnv().ToOptions(w)
	if err != nil {
		return nil, err
	}
	return conversion.NewConverter(append(envOpts, opts...)...), nil
}
