package capability

import "math/rand"

// Random is a seeded, deterministic pseudo-random source. Given the same
// seed, every draw sequence is reproducible; it is not cryptographic.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a source from an integer seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform float in [0,1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// IntRange returns a uniform integer in [min, max] inclusive.
func (r *Random) IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// Shuffle returns a new slice with the items in Fisher-Yates shuffled order.
// The input slice is not modified.
func Shuffle[T any](r *Random, items []T) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := r.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns a uniformly chosen item. The second return is false for an
// empty slice.
func Pick[T any](r *Random, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.rng.Intn(len(items))], true
}
