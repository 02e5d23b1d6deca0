// Package bigint implements non-negative arbitrary-precision integers built
// from half-word limbs.
//
// Each limb holds a value in [0, LimbBase) where LimbBase is 2^(UintSize/2).
// Because a limb never uses more than half of a native word, any limb × limb
// product plus an incoming carry fits in a Word, so the kernel never needs a
// wider intermediate type.
//
// Every operation is pure: operands are never modified and results are newly
// allocated, normalized values.
package bigint

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"strings"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// Word is the native unsigned machine word a limb is stored in.
type Word = uint

const (
	// LimbBits is the number of significant bits in a limb (half a Word).
	LimbBits = bits.UintSize / 2
	// LimbBase is the radix of the limb representation.
	LimbBase Word = 1 << LimbBits
	// MaxLimbs is the largest limb count Create will attempt to allocate.
	MaxLimbs = math.MaxInt / (bits.UintSize / 8)

	limbMask = LimbBase - 1
)

// zeroLimbs backs the canonical zero. It is shared and never written.
var zeroLimbs = []Word{0}

// Int is a non-negative integer stored least-significant limb first.
//
// A normalized Int has at least one limb and a non-zero top limb, except for
// zero which is exactly one zero limb. The zero value of Int is zero.
type Int struct {
	limbs []Word
}

// Create allocates an Int of n zero limbs. The result is not normalized
// until the caller fills it and passes it through Normalize.
//
// Parameters:
//   - n: The number of limbs, at least 1.
//
// Returns:
//   - Int: The new value.
//   - error: ErrInvalidArgument when n < 1, ErrAllocationFailure when the
//     limbs cannot be allocated.
func Create(n int) (Int, error) {
	if n < 1 {
		return Int{}, apperrors.NewValidationError("limbCount", "must be at least 1", n)
	}
	if n > MaxLimbs {
		return Int{}, apperrors.NewAllocationError(n, nil)
	}
	return allocate(n)
}

// allocate turns the runtime's makeslice panic into an AllocationError.
func allocate(n int) (x Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			x, err = Int{}, apperrors.NewAllocationError(n, rerr)
		}
	}()
	return Int{limbs: make([]Word, n)}, nil
}

// Zero returns the canonical zero.
func Zero() Int {
	return Int{limbs: []Word{0}}
}

// FromWord returns w as an Int, splitting it across two limbs when it does
// not fit in one.
func FromWord(w Word) Int {
	hi, lo := addCarry(w)
	if hi == 0 {
		return Int{limbs: []Word{lo}}
	}
	return Int{limbs: []Word{lo, hi}}
}

// FromLimbs builds a normalized Int from limbs given least-significant first.
func FromLimbs(limbs ...Word) (Int, error) {
	if len(limbs) == 0 {
		return Int{}, apperrors.NewValidationError("limbs", "at least one limb is required", nil)
	}
	for i, l := range limbs {
		if l >= LimbBase {
			return Int{}, apperrors.NewValidationError("limbs",
				fmt.Sprintf("limb %d is out of range [0, %d)", i, LimbBase), l)
		}
	}
	x, err := Create(len(limbs))
	if err != nil {
		return Int{}, err
	}
	copy(x.limbs, limbs)
	return Normalize(x), nil
}

// Copy returns a deep copy of x.
func Copy(x Int) Int {
	w := x.words()
	r := make([]Word, len(w))
	copy(r, w)
	return Int{limbs: r}
}

// Normalize strips most-significant zero limbs from x. When x is already
// normalized it is returned as is; otherwise the result is a right-sized copy.
func Normalize(x Int) Int {
	if len(x.limbs) == 0 {
		return Zero()
	}
	w := x.limbs
	n := sigLen(w)
	if n == len(w) {
		return x
	}
	r := make([]Word, n)
	copy(r, w)
	return Int{limbs: r}
}

// Len returns the number of limbs in x.
func (x Int) Len() int { return len(x.words()) }

// Limb returns the i-th limb of x, least significant first.
// It panics if i is out of range.
func (x Int) Limb(i int) Word { return x.words()[i] }

// Limbs returns a copy of the limbs of x, least significant first.
func (x Int) Limbs() []Word {
	return Copy(x).limbs
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	w := x.words()
	return sigLen(w) == 1 && w[0] == 0
}

// Cmp compares the magnitudes of x and y limb by limb, most significant
// first, and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	a, b := trim(x.words()), trim(y.words())
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String returns x in hexadecimal with a 0x prefix. Since LimbBase is a power
// of two, every limb below the top one maps to a fixed number of hex digits.
func (x Int) String() string {
	w := trim(x.words())
	var sb strings.Builder
	sb.WriteString("0x")
	fmt.Fprintf(&sb, "%x", w[len(w)-1])
	for i := len(w) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*x", LimbBits/4, w[i])
	}
	return sb.String()
}

// words returns the limbs of x, mapping the zero value onto the shared zero.
func (x Int) words() []Word {
	if len(x.limbs) == 0 {
		return zeroLimbs
	}
	return x.limbs
}

// sigLen returns the number of limbs up to and including the top non-zero one,
// never less than 1.
func sigLen(w []Word) int {
	i := len(w) - 1
	for i > 0 && w[i] == 0 {
		i--
	}
	return i + 1
}

func trim(w []Word) []Word { return w[:sigLen(w)] }
