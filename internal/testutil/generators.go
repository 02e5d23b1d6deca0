// Package testutil provides shared testing utilities used across the project:
// gopter generators for limbs, big integers and alphabets, and random digit
// strings.
package testutil

import (
	"math/rand"
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/baseconv/internal/alphabet"
	"github.com/agbru/baseconv/internal/bigint"
)

// GenLimb generates a single limb value in [0, LimbBase).
func GenLimb() gopter.Gen {
	return gen.UInt64Range(0, uint64(bigint.LimbBase-1)).
		Map(func(v uint64) bigint.Word { return bigint.Word(v) })
}

// GenScalar generates a non-zero scalar in [1, LimbBase).
func GenScalar() gopter.Gen {
	return gen.UInt64Range(1, uint64(bigint.LimbBase-1)).
		Map(func(v uint64) bigint.Word { return bigint.Word(v) })
}

// GenInt generates normalized bigint.Int values of 1 to maxLimbs limbs.
//
// Parameters:
//   - maxLimbs: The largest limb count to generate, at least 1.
//
// Returns:
//   - gopter.Gen: A generator of bigint.Int.
func GenInt(maxLimbs int) gopter.Gen {
	return gen.IntRange(1, maxLimbs).
		FlatMap(func(v interface{}) gopter.Gen {
			return gen.SliceOfN(v.(int), GenLimb())
		}, reflect.TypeOf([]bigint.Word{})).
		Map(func(limbs []bigint.Word) bigint.Int {
			x, err := bigint.FromLimbs(limbs...)
			if err != nil {
				panic(err)
			}
			return x
		})
}

// GenAlphabet generates valid alphabets of MinBase to MaxBase symbols, each
// a random selection and ordering of the canonical symbols.
func GenAlphabet() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(alphabet.MinBase, alphabet.MaxBase),
		gen.Int64(),
	).Map(func(values []interface{}) string {
		return RandomAlphabet(rand.New(rand.NewSource(values[1].(int64))), values[0].(int))
	})
}

// RandomAlphabet returns base distinct canonical symbols in random order.
func RandomAlphabet(rng *rand.Rand, base int) string {
	perm := rng.Perm(len(alphabet.Symbols))
	out := make([]byte, base)
	for i := range out {
		out[i] = alphabet.Symbols[perm[i]]
	}
	return string(out)
}

// RandomDigits returns n digits drawn from alph. The first digit is never the
// zero symbol unless n is 1, so the result is in canonical form.
func RandomDigits(rng *rand.Rand, alph string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alph[rng.Intn(len(alph))]
	}
	if n > 1 && out[0] == alph[0] {
		out[0] = alph[1+rng.Intn(len(alph)-1)]
	}
	return string(out)
}
