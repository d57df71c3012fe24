package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source picks integers in [0, n).
type Source interface {
	IntN(n int) int
}

func cryptoSeed() *mrand.PCG {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err)
	}
	return mrand.NewPCG(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:]))
}

// New returns a source seeded from crypto/rand.
func New() Source {
	return mrand.New(cryptoSeed()) // nolint: gosec
}

// NewSeeded returns a reproducible source.
func NewSeeded(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // nolint: gosec
}

// Pick returns k distinct items of s in random order.
func Pick[T any](src Source, s []T, k int) []T {
	if k > len(s) {
		panic("random: not enough items to pick from")
	}
	pool := make([]T, len(s))
	copy(pool, s)
	for i := range k {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func Choice[T any](src Source, s []T) T {
	return s[src.IntN(len(s))]
}
