package conversion

import (
	"fmt"
	"time"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// DefaultMaxInputLength bounds the input accepted by a Converter built
// without WithMaxInputLength.
const DefaultMaxInputLength = 10_000

// Converter wraps Convert with an input size limit and reports every call
// to its observers. It is safe for concurrent use.
type Converter struct {
	maxInputLength int
	subject        *ConversionSubject
}

// Option defines a functional option for configuring a Converter.
type Option func(*Converter)

// WithObserver registers an observer notified after every conversion.
func WithObserver(o ConversionObserver) Option {
	return func(c *Converter) {
		c.subject.Register(o)
	}
}

// WithMaxInputLength sets the longest input, in symbols, the converter
// accepts. Zero or a negative value removes the limit.
func WithMaxInputLength(n int) Option {
	return func(c *Converter) {
		c.maxInputLength = n
	}
}

// NewConverter creates a Converter with DefaultMaxInputLength and no
// observers, then applies opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		maxInputLength: DefaultMaxInputLength,
		subject:        NewConversionSubject(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subject returns the subject observers are registered with.
func (c *Converter) Subject() *ConversionSubject { return c.subject }

// MaxInputLength returns the configured input limit, 0 when unlimited.
func (c *Converter) MaxInputLength() int {
	if c.maxInputLength < 0 {
		return 0
	}
	return c.maxInputLength
}

// Convert behaves like the package-level Convert, rejecting inputs longer
// than the configured limit with ErrInvalidArgument before any work is done.
func (c *Converter) Convert(input, inputAlphabet, outputAlphabet string) (string, error) {
	start := time.Now()
	var (
		out string
		err error
	)
	if limit := c.MaxInputLength(); limit > 0 && len(input) > limit {
		err = apperrors.NewValidationError("input",
			fmt.Sprintf("length %d exceeds the limit of %d symbols", len(input), limit), nil)
	} else {
		out, err = Convert(input, inputAlphabet, outputAlphabet)
	}

	c.subject.Notify(ConversionEvent{
		InputBase:    len(inputAlphabet),
		OutputBase:   len(outputAlphabet),
		InputDigits:  len(input),
		OutputDigits: len(out),
		Duration:     time.Since(start),
		Err:          err,
	})
	return out, err
}
