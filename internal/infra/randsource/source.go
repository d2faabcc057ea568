package randsource

import (
	"math/rand/v2"

	"github.com/aalvaropc/kata/internal/domain"
)

// New returns a PCG-backed source. A nil seed draws one from the runtime's
// entropy-seeded generator, so results differ between runs.
func New(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// FromConfig builds the source described by cfg.Random.
func FromConfig(cfg domain.Config) *rand.Rand {
	return New(cfg.Random.Seed)
}
