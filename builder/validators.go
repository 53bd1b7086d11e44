// Package builder provides validation helpers to enforce parameter contracts
// in the producers.
package builder

import "fmt"

// validateMin ensures that every value in got is ≥ min.
// Returns "<Method>: <name>=<got> must be ≥ <min>: ErrTooFewVertices" otherwise.
// Complexity: O(len(got)) time, O(1) space.
func validateMin(method, name string, min int, got ...int) error {
	for _, v := range got {
		if v < min {
			return fmt.Errorf("%s: %s=%v (each must be ≥ %d): %w", method, name, got, min, ErrTooFewVertices)
		}
	}

	return nil
}

// validateRand rejects jitter without an RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.needsRand() {
		return fmt.Errorf("%s: jitter %g without rng: %w", method, cfg.jitter, ErrNeedRandSource)
	}

	return nil
}
