// Package strand models fixed-length sequences over the DNA alphabet and the
// operations the generators need on them: random draws, Hamming distance and
// per-position mutation.
package strand

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Alphabet holds the symbols a strand may contain.
const Alphabet = "ATCG"

// ErrLengthMismatch is returned when two strands of different lengths are compared.
var ErrLengthMismatch = errors.New("strand lengths differ")

// Strand is an ordered sequence of symbols from Alphabet.
type Strand []byte

// IsSymbol reports whether b is one of the alphabet symbols.
func IsSymbol(b byte) bool {
	switch b {
	case 'A', 'T', 'C', 'G':
		return true
	}
	return false
}

// RandomSymbol draws one symbol uniformly from the alphabet.
func RandomSymbol(rng *rand.Rand) byte {
	return Alphabet[rng.IntN(len(Alphabet))]
}

// Random returns a strand of the given length with every position drawn
// independently.
func Random(rng *rand.Rand, length int) Strand {
	s := make(Strand, length)
	for i := range s {
		s[i] = RandomSymbol(rng)
	}
	return s
}

// Parse converts text such as "ATCG" into a strand, rejecting foreign symbols.
func Parse(text string) (Strand, error) {
	s := make(Strand, len(text))
	for i := 0; i < len(text); i++ {
		if !IsSymbol(text[i]) {
			return nil, fmt.Errorf("invalid symbol %q at position %d", text[i], i)
		}
		s[i] = text[i]
	}
	return s, nil
}

// Hamming returns the number of positions at which a and b differ.
func Hamming(a, b Strand) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// Mutate returns a copy of centroid where every position is, with
// probability p, replaced by a freshly drawn symbol. The replacement may be
// the symbol already there.
func Mutate(rng *rand.Rand, centroid Strand, p float64) Strand {
	coin := distuv.Bernoulli{P: p, Src: rng}
	out := make(Strand, len(centroid))
	for i, base := range centroid {
		if coin.Rand() == 1 {
			out[i] = RandomSymbol(rng)
		} else {
			out[i] = base
		}
	}
	return out
}

// Valid reports whether every symbol belongs to the alphabet.
func (s Strand) Valid() bool {
	for _, b := range s {
		if !IsSymbol(b) {
			return false
		}
	}
	return true
}

// Fields splits the strand into single-character fields, one per symbol.
func (s Strand) Fields() []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = string(b)
	}
	return out
}

func (s Strand) String() string {
	return string(s)
}
