package bigint

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// toBig converts x into a math/big oracle value.
func toBig(x Int) *big.Int {
	z := new(big.Int)
	w := x.words()
	for i := len(w) - 1; i >= 0; i-- {
		z.Lsh(z, LimbBits)
		z.Or(z, new(big.Int).SetUint64(uint64(w[i])))
	}
	return z
}

// fromBig converts a non-negative math/big value into an Int.
func fromBig(t *testing.T, b *big.Int) Int {
	t.Helper()
	mask := new(big.Int).SetUint64(uint64(limbMask))
	var limbs []Word
	v := new(big.Int).Set(b)
	for {
		limbs = append(limbs, Word(new(big.Int).And(v, mask).Uint64()))
		v.Rsh(v, LimbBits)
		if v.Sign() == 0 {
			break
		}
	}
	x, err := FromLimbs(limbs...)
	if err != nil {
		t.Fatalf("FromLimbs failed: %v", err)
	}
	return x
}

func mustBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad literal " + s)
	}
	return z
}

func randomBig(rng *rand.Rand, maxBits int) *big.Int {
	n := rng.Intn(maxBits) + 1
	return new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(n)))
}

func assertNormalized(t *testing.T, x Int) {
	t.Helper()
	if x.Len() < 1 {
		t.Fatalf("result has no limbs")
	}
	if x.Len() > 1 && x.Limb(x.Len()-1) == 0 {
		t.Fatalf("result %v has a zero top limb", x.Limbs())
	}
	for i := 0; i < x.Len(); i++ {
		if x.Limb(i) >= LimbBase {
			t.Fatalf("limb %d = %d is out of range", i, x.Limb(i))
		}
	}
}

func TestAddCarry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v, hi, lo Word
	}{
		{0, 0, 0},
		{LimbBase - 1, 0, LimbBase - 1},
		{LimbBase, 1, 0},
		{3*LimbBase + 5, 3, 5},
		{^Word(0), LimbBase - 1, LimbBase - 1},
	}
	for _, tt := range tests {
		hi, lo := addCarry(tt.v)
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("addCarry(%d) = (%d, %d), want (%d, %d)", tt.v, hi, lo, tt.hi, tt.lo)
		}
	}
}

func TestSubBorrow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, hi, lo Word
	}{
		{5, 3, 0, 2},
		{3, 3, 0, 0},
		{3, 5, 1, LimbBase - 2},
		{0, LimbBase, 1, 0},
		{0, 1, 1, LimbBase - 1},
	}
	for _, tt := range tests {
		hi, lo := subBorrow(tt.a, tt.b)
		if hi != tt.hi || lo != tt.lo {
			t.Errorf("subBorrow(%d, %d) = (%d, %d), want (%d, %d)", tt.a, tt.b, hi, lo, tt.hi, tt.lo)
		}
	}
}

func TestAddScalar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		s    Word
	}{
		{"Zero plus zero", "0", 0},
		{"Small", "41", 1},
		{"Carry across one limb", "0xffffffff", 1},
		{"Carry ripples through all limbs", "0xffffffffffffffffffffffffffffffff", 1},
		{"Max scalar", "123456789012345678901234567890", Word(LimbBase - 1)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := fromBig(t, mustBig(tt.a))
			got, err := AddScalar(a, tt.s)
			if err != nil {
				t.Fatalf("AddScalar failed: %v", err)
			}
			assertNormalized(t, got)
			want := new(big.Int).Add(mustBig(tt.a), new(big.Int).SetUint64(uint64(tt.s)))
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("AddScalar(%s, %d) = %s, want %s", tt.a, tt.s, toBig(got), want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
	}{
		{"Zeros", "0", "0"},
		{"Same length", "0x123456789", "0x987654321"},
		{"Shorter first", "1", "0xffffffffffffffffffffffff"},
		{"Shorter second", "0xffffffffffffffffffffffff", "1"},
		{"Carry out of top limb", "0xffffffffffffffff", "0xffffffffffffffff"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Add(fromBig(t, mustBig(tt.a)), fromBig(t, mustBig(tt.b)))
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			assertNormalized(t, got)
			want := new(big.Int).Add(mustBig(tt.a), mustBig(tt.b))
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("Add(%s, %s) = %s, want %s", tt.a, tt.b, toBig(got), want)
			}
		})
	}
}

func TestMulScalar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		s    Word
	}{
		{"By zero", "0xdeadbeefcafebabe", 0},
		{"By one", "0xdeadbeefcafebabe", 1},
		{"Zero operand", "0", 94},
		{"Max limb by max scalar", "0xffffffffffffffffffffffff", Word(LimbBase - 1)},
		{"Decimal digit", "98765432109876543210", 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := MulScalar(fromBig(t, mustBig(tt.a)), tt.s)
			if err != nil {
				t.Fatalf("MulScalar failed: %v", err)
			}
			assertNormalized(t, got)
			want := new(big.Int).Mul(mustBig(tt.a), new(big.Int).SetUint64(uint64(tt.s)))
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("MulScalar(%s, %d) = %s, want %s", tt.a, tt.s, toBig(got), want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		a, b    string
		wantErr bool
	}{
		{"Equal operands", "0x1234", "0x1234", false},
		{"Borrow across limbs", "0x10000000000000000", "1", false},
		{"Shorter subtrahend", "0xabcdef0123456789abcdef", "0xff", false},
		{"Zero subtrahend", "77", "0", false},
		{"Negative by length", "5", "0x100000000", true},
		{"Negative by top limb", "0x100000000", "0x200000000", true},
		// Equal length and equal top limb, differing only below.
		{"Negative by lower limb", "0x500000003", "0x500000004", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := fromBig(t, mustBig(tt.a)), fromBig(t, mustBig(tt.b))
			got, err := Sub(a, b)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidArgument) {
					t.Fatalf("Sub(%s, %s) error = %v, want ErrInvalidArgument", tt.a, tt.b, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sub failed: %v", err)
			}
			assertNormalized(t, got)
			want := new(big.Int).Sub(mustBig(tt.a), mustBig(tt.b))
			if toBig(got).Cmp(want) != 0 {
				t.Errorf("Sub(%s, %s) = %s, want %s", tt.a, tt.b, toBig(got), want)
			}
		})
	}
}

func TestDivScalar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		s    Word
	}{
		{"Zero dividend", "0", 7},
		{"Dividend below divisor", "6", 7},
		{"Exact", "0xff", 0xff},
		{"By one", "0x1234567890abcdef1234567890abcdef", 1},
		{"Top limb below divisor", "0x100000005", 10},
		{"Top limb above divisor", "0xfffffffffffffffffffffff1", 3},
		{"Max divisor", "0xffffffffffffffffffffffffffffffffffff", Word(LimbBase - 1)},
		{"Large decimal", "340282366920938463463374607431768211457", 94},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := fromBig(t, mustBig(tt.a))
			out, err := DivScalar(a, tt.s)
			if err != nil {
				t.Fatalf("DivScalar failed: %v", err)
			}
			assertNormalized(t, out.Quotient)
			wantQ, wantR := new(big.Int).QuoRem(mustBig(tt.a), new(big.Int).SetUint64(uint64(tt.s)), new(big.Int))
			if toBig(out.Quotient).Cmp(wantQ) != 0 || uint64(out.Remainder) != wantR.Uint64() {
				t.Errorf("DivScalar(%s, %d) = (%s, %d), want (%s, %s)",
					tt.a, tt.s, toBig(out.Quotient), out.Remainder, wantQ, wantR)
			}
		})
	}
}

func TestScalarArguments(t *testing.T) {
	t.Parallel()
	one := FromWord(1)
	checks := map[string]error{}
	_, checks["AddScalar oversized"] = AddScalar(one, LimbBase)
	_, checks["MulScalar oversized"] = MulScalar(one, LimbBase)
	_, checks["DivScalar oversized"] = DivScalar(one, LimbBase)
	_, checks["DivScalar zero"] = DivScalar(one, 0)
	for name, err := range checks {
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestOperandsUnmodified(t *testing.T) {
	t.Parallel()
	a := fromBig(t, mustBig("0xffffffffffffffffffffffffffff"))
	b := fromBig(t, mustBig("0x1"))
	before := a.Limbs()

	_, _ = Add(a, b)
	_, _ = AddScalar(a, 1)
	_, _ = MulScalar(a, 93)
	_, _ = Sub(a, b)
	_, _ = DivScalar(a, 7)

	if !equalWords(a.Limbs(), before) {
		t.Errorf("operand changed from %v to %v", before, a.Limbs())
	}
}

func TestKernelAgainstMathBig(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		x, y := randomBig(rng, 700), randomBig(rng, 700)
		s := Word(rng.Int63n(int64(LimbBase-1))) + 1
		a, b := fromBig(t, x), fromBig(t, y)

		sum, err := Add(a, b)
		if err != nil || toBig(sum).Cmp(new(big.Int).Add(x, y)) != 0 {
			t.Fatalf("Add(%s, %s) = %s, %v", x, y, toBig(sum), err)
		}

		hi, lo := a, b
		if x.Cmp(y) < 0 {
			hi, lo = b, a
		}
		diff, err := Sub(hi, lo)
		if err != nil || toBig(diff).Cmp(new(big.Int).Sub(toBig(hi), toBig(lo))) != 0 {
			t.Fatalf("Sub(%s, %s) = %s, %v", toBig(hi), toBig(lo), toBig(diff), err)
		}

		prod, err := MulScalar(a, s)
		if err != nil || toBig(prod).Cmp(new(big.Int).Mul(x, new(big.Int).SetUint64(uint64(s)))) != 0 {
			t.Fatalf("MulScalar(%s, %d) = %s, %v", x, s, toBig(prod), err)
		}

		out, err := DivScalar(a, s)
		wantQ, wantR := new(big.Int).QuoRem(x, new(big.Int).SetUint64(uint64(s)), new(big.Int))
		if err != nil || toBig(out.Quotient).Cmp(wantQ) != 0 || uint64(out.Remainder) != wantR.Uint64() {
			t.Fatalf("DivScalar(%s, %d) = (%s, %d), %v", x, s, toBig(out.Quotient), out.Remainder, err)
		}
	}
}

func BenchmarkDivScalar(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	x, err := FromLimbs(randomLimbs(rng, 64)...)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DivScalar(x, 36); err != nil {
			b.Fatal(err)
		}
	}
}

func randomLimbs(rng *rand.Rand, n int) []Word {
	limbs := make([]Word, n)
	for i := range limbs {
		limbs[i] = Word(rng.Int63n(int64(LimbBase)))
	}
	return limbs
}
