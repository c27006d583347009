package match

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveIntercept indicates DiffInterceptTime is zero or negative,
	// which would make the mass rescaling undefined.
	ErrNonPositiveIntercept = errors.New("match: DiffInterceptTime must be positive")

	// ErrNegativeParameter indicates a negative precision or max pair
	// distance value.
	ErrNegativeParameter = errors.New("match: precision and max pair distance must be non-negative")
)

// Config holds the matching parameters. The two diff intercepts calibrate
// the anisotropy of the similarity metric: a difference of DiffInterceptTime
// on the time axis counts the same as a difference of DiffInterceptMass on
// the mass axis. Mass coordinates are divided by
// DiffInterceptMass/DiffInterceptTime before any distance computation so a
// plain Euclidean metric can be used.
type Config struct {
	// MaxPairDistanceTime and MaxPairDistanceMass set the separation the
	// runner-up neighbor must have from the nearest neighbor on at least one
	// axis for a match to be trusted.
	MaxPairDistanceTime float64
	MaxPairDistanceMass float64

	// PrecisionTime and PrecisionMass bound how far a scene element may lie
	// from its nearest reference neighbor and still form a pair.
	PrecisionTime float64
	PrecisionMass float64

	DiffInterceptTime float64
	DiffInterceptMass float64
}

// DefaultConfig returns the default matching parameters.
func DefaultConfig() Config {
	return Config{
		MaxPairDistanceTime: 3,
		MaxPairDistanceMass: 1,
		PrecisionTime:       20,
		PrecisionMass:       5,
		DiffInterceptTime:   1,
		DiffInterceptMass:   0.1,
	}
}

// Validate checks the configuration before any processing happens.
func (c Config) Validate() error {
	if c.DiffInterceptTime <= 0 {
		return fmt.Errorf("%w, got %v", ErrNonPositiveIntercept, c.DiffInterceptTime)
	}
	if c.MaxPairDistanceTime < 0 || c.MaxPairDistanceMass < 0 ||
		c.PrecisionTime < 0 || c.PrecisionMass < 0 {
		return ErrNegativeParameter
	}
	return nil
}

// massScale returns the divisor applied to mass coordinates before distance
// computations.
func (c Config) massScale() float64 {
	return c.DiffInterceptMass / c.DiffInterceptTime
}
