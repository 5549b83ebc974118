// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a math/rand source so a whole run can be replayed from one seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means the current time is used.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
