package bigint

import (
	"fmt"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// DivisionOutcome is the result of dividing an Int by a scalar.
// The remainder is always smaller than the divisor, so it fits in one limb.
type DivisionOutcome struct {
	Quotient  Int
	Remainder Word
}

// addCarry splits a sum that may exceed LimbBase into a carry-out (hi) and an
// in-range limb (lo).
func addCarry(v Word) (hi, lo Word) {
	if v < LimbBase {
		return 0, v
	}
	return v >> LimbBits, v & limbMask
}

// subBorrow computes a-b for one limb position. hi is 1 when a borrow from
// the next position was needed.
func subBorrow(a, b Word) (hi, lo Word) {
	if a < b {
		return 1, a + LimbBase - b
	}
	return 0, a - b
}

func checkScalar(s Word) error {
	if s >= LimbBase {
		return apperrors.NewValidationError("scalar",
			fmt.Sprintf("must be below the limb base %d", LimbBase), s)
	}
	return nil
}

// AddScalar returns a + s.
//
// Parameters:
//   - a: The big operand.
//   - s: A scalar below LimbBase.
//
// Returns:
//   - Int: The normalized sum.
//   - error: ErrInvalidArgument if s is not a scalar, ErrAllocationFailure if
//     the result cannot be allocated.
func AddScalar(a Int, s Word) (Int, error) {
	if err := checkScalar(s); err != nil {
		return Int{}, err
	}
	x := a.words()
	r, err := Create(len(x) + 1)
	if err != nil {
		return Int{}, err
	}
	carry := s
	for i, limb := range x {
		carry, r.limbs[i] = addCarry(limb + carry)
	}
	r.limbs[len(x)] = carry
	return Normalize(r), nil
}

// Add returns a + b. Limbs are summed up to the shorter operand's length,
// then the carry is propagated through the rest of the longer one.
func Add(a, b Int) (Int, error) {
	x, y := a.words(), b.words()
	if len(x) < len(y) {
		x, y = y, x
	}
	r, err := Create(len(x) + 1)
	if err != nil {
		return Int{}, err
	}
	var carry Word
	for i := range y {
		carry, r.limbs[i] = addCarry(x[i] + y[i] + carry)
	}
	for i := len(y); i < len(x); i++ {
		carry, r.limbs[i] = addCarry(x[i] + carry)
	}
	r.limbs[len(x)] = carry
	return Normalize(r), nil
}

// MulScalar returns a × s. Each limb product plus the incoming carry is at
// most (LimbBase-1)² + LimbBase-1, which fits in a Word.
func MulScalar(a Int, s Word) (Int, error) {
	if err := checkScalar(s); err != nil {
		return Int{}, err
	}
	x := a.words()
	r, err := Create(len(x) + 1)
	if err != nil {
		return Int{}, err
	}
	var carry Word
	for i, limb := range x {
		carry, r.limbs[i] = addCarry(limb*s + carry)
	}
	r.limbs[len(x)] = carry
	return Normalize(r), nil
}

// Sub returns a - b. It fails with ErrInvalidArgument when b > a since the
// result would be negative.
func Sub(a, b Int) (Int, error) {
	if a.Cmp(b) < 0 {
		return Int{}, apperrors.NewValidationError("subtrahend", "negative result", b.String())
	}
	x, y := trim(a.words()), trim(b.words())
	r, err := Create(len(x))
	if err != nil {
		return Int{}, err
	}
	var borrow Word
	for i := range y {
		borrow, r.limbs[i] = subBorrow(x[i], y[i]+borrow)
	}
	for i := len(y); i < len(x); i++ {
		borrow, r.limbs[i] = subBorrow(x[i], borrow)
	}
	return Normalize(r), nil
}

// DivScalar returns the quotient and remainder of a / s, such that
// a = Quotient × s + Remainder and Remainder < s.
//
// Limbs are consumed from the most significant down. The running remainder,
// always below s, is promoted with the next limb into a two-limb estimate;
// native division of that estimate yields the next quotient limb and the new
// remainder. Since the remainder is below s < LimbBase, the estimate never
// overflows a Word and each quotient limb fits in a limb.
//
// Parameters:
//   - a: The dividend.
//   - s: A non-zero scalar below LimbBase.
//
// Returns:
//   - DivisionOutcome: The quotient and scalar remainder.
//   - error: ErrInvalidArgument for a zero or oversized divisor,
//     ErrAllocationFailure if the quotient cannot be allocated.
func DivScalar(a Int, s Word) (DivisionOutcome, error) {
	if s == 0 {
		return DivisionOutcome{}, apperrors.NewValidationError("divisor", "division by zero", s)
	}
	if err := checkScalar(s); err != nil {
		return DivisionOutcome{}, err
	}

	x := trim(a.words())
	q, err := Create(len(x))
	if err != nil {
		return DivisionOutcome{}, err
	}
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		est := r<<LimbBits | x[i]
		q.limbs[i], r = est/s, est%s
	}
	return DivisionOutcome{Quotient: Normalize(q), Remainder: r}, nil
}
