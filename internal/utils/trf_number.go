package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateTRFNumber builds a human-readable reference of the form
// TRF-YYYYMMDD-NNN. The numeric suffix is random; uniqueness is enforced by
// the store's unique index, so collisions surface as a duplicate error and
// the caller retries.
func GenerateTRFNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("TRF-%s-%03d", now.Format("20060102"), n.Int64()), nil
}
