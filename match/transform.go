package match

import "github.com/mzmatch/mzmatch/feature"

// Transform maps a single coordinate, e.g. a dewarping function estimated by
// a map aligner. Transforms are applied independently per axis to scene
// coordinates before normalization.
type Transform interface {
	Apply(v float64) float64
}

// Identity leaves coordinates unchanged.
type Identity struct{}

// Apply returns v.
func (Identity) Apply(v float64) float64 { return v }

// Linear is an affine per-axis transform v' = Slope*v + Intercept.
type Linear struct {
	Slope     float64
	Intercept float64
}

// Apply returns Slope*v + Intercept.
func (l Linear) Apply(v float64) float64 { return l.Slope*v + l.Intercept }

// MapTransform bundles the per-axis transforms of a scene map. A nil axis
// means identity.
type MapTransform struct {
	Time Transform
	Mass Transform
}

func (t MapTransform) apply(p feature.Position) feature.Position {
	if t.Time != nil {
		p.Time = t.Time.Apply(p.Time)
	}
	if t.Mass != nil {
		p.Mass = t.Mass.Apply(p.Mass)
	}
	return p
}
