package randsource

import (
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

var _ ports.RandomSource = New(nil)

func TestNew_SeededSequencesMatch(t *testing.T) {
	seed := uint64(99)
	a, b := New(&seed), New(&seed)
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestFromConfig_UsesSeed(t *testing.T) {
	seed := uint64(5)
	cfg := domain.DefaultConfig()
	cfg.Random.Seed = &seed

	want := New(&seed).IntN(1 << 30)
	if got := FromConfig(cfg).IntN(1 << 30); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestNew_Unseeded(t *testing.T) {
	r := New(nil)
	if v := r.IntN(10); v < 0 || v >= 10 {
		t.Fatalf("out of range: %d", v)
	}
}
