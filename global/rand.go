package global

import (
	"math"
	"math/rand/v2"
)

// Global RNG that can be changed for testing purposes
var PokeRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

func ForceRng(source rand.Source) {
	PokeRand = rand.New(source)
}

func SetNormalRng() {
	PokeRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// HighSource always produces the largest value, pushing draws to the top of their range.
type HighSource struct{}

func (HighSource) Uint64() uint64 {
	return math.MaxUint64
}

// LowSource always produces zero, pushing draws to the bottom of their range.
type LowSource struct{}

func (LowSource) Uint64() uint64 {
	return 0
}
