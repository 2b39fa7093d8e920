package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random draws that can be mocked for testing. The
// engine uses it for riddle seeds and theft resolution, so tests need
// deterministic control over every draw.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Chance returns true with the given percent likelihood [0, 100]
	Chance(percent int) bool
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Chance returns true with the given percent likelihood
func (r *CryptoRandom) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Intn(100) < percent
}
