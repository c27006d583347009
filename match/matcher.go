package match

import (
	"math"

	"github.com/mzmatch/mzmatch/feature"
	"github.com/mzmatch/mzmatch/index"
	"github.com/mzmatch/mzmatch/index/bruteforce"
	"github.com/mzmatch/mzmatch/index/vptree"
)

// autoTreeMinPoints is the reference set size above which the auto index
// factory switches from the brute-force scan to the VP-tree.
const autoTreeMinPoints = 512

// Matcher runs pair finding and consensus building with a fixed
// configuration. A Matcher is safe for concurrent use: every call builds its
// own index, claim table and candidate list.
type Matcher struct {
	cfg      Config
	scale    float64
	newIndex func(n int) index.Index
}

// Option customizes a Matcher.
type Option func(*Matcher)

// WithIndex overrides the spatial index factory. The factory receives the
// reference set size and must return an empty index to build over it.
func WithIndex(factory func(n int) index.Index) Option {
	return func(m *Matcher) {
		if factory != nil {
			m.newIndex = factory
		}
	}
}

// New validates the configuration and returns a Matcher. The default index
// factory scans small reference sets exhaustively and uses a VP-tree above
// autoTreeMinPoints.
func New(cfg Config, opts ...Option) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Matcher{
		cfg:      cfg,
		scale:    cfg.massScale(),
		newIndex: autoIndex,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func autoIndex(n int) index.Index {
	if n >= autoTreeMinPoints {
		return vptree.New()
	}
	return bruteforce.New()
}

// point rescales the mass axis of p so Euclidean distance in index space
// approximates the anisotropic time/mass similarity metric.
func (m *Matcher) point(p feature.Position, key int) index.Point {
	return index.Point{Time: p.Time, Mass: p.Mass / m.scale, Key: key}
}

// withinPrecision is the proximity gate between a query and its nearest
// neighbor, evaluated in normalized coordinates.
func (m *Matcher) withinPrecision(q, nearest index.Point) bool {
	return math.Abs(q.Time-nearest.Time) < m.cfg.PrecisionTime &&
		math.Abs(q.Mass-nearest.Mass) < m.cfg.PrecisionMass
}

// unambiguous is the ambiguity gate: the runner-up must be clearly farther
// from the nearest neighbor on at least one axis, otherwise the match is too
// ambiguous to trust.
func (m *Matcher) unambiguous(nearest, second index.Point) bool {
	return math.Abs(second.Time-nearest.Time) > m.cfg.MaxPairDistanceTime ||
		math.Abs(second.Mass-nearest.Mass) > m.cfg.MaxPairDistanceMass
}
