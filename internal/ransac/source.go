package ransac

import "math/rand"

// Source draws uniform integers in [0,n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource creates a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// sample draws SampleSize indices from [0,n) with replacement.
func sample(src Source, n int) [SampleSize]int {
	var idx [SampleSize]int
	for i := range idx {
		idx[i] = src.Intn(n)
	}
	return idx
}
