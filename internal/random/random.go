// Package random provides the seeded generator used to roll dice. It is fast
// and statistically uniform but not cryptographically secure.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"wuerfel/internal/dice"
	"wuerfel/internal/errors"
)

// Roller draws a value from a die's range.
type Roller interface {
	Roll(r dice.Range) int
}

// Source is a PCG generator. It is not safe for concurrent use; the
// interactive loop owns it.
type Source struct {
	seed uint64
	rng  *mrand.Rand
}

// New creates a Source from a 64-bit seed. Equal seeds give equal sequences.
func New(seed uint64) *Source {
	// PCG wants 128 bits of state; derive the stream from the seed
	return &Source{
		seed: seed,
		rng:  mrand.New(mrand.NewPCG(seed, splitmix(seed))),
	}
}

// NewFromEntropy seeds a Source with 8 bytes read from the OS.
func NewFromEntropy() (*Source, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, errors.NewIOError("reading random seed", err)
	}
	return New(binary.BigEndian.Uint64(b[:])), nil
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Roll returns a uniformly distributed integer in [r.Lo, r.Hi). It panics
// if the range is empty.
func (s *Source) Roll(r dice.Range) int {
	if r.Empty() {
		panic("random: Roll called with empty range " + r.String())
	}
	return r.Lo + s.rng.IntN(r.Len())
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
