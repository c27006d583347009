package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterPositionFunctions registers pos_l2 and pos_scale_mass with the
// driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterPositionFunctions(_ *sql.DB) error {
	// The driver rejects duplicate registrations.
	_ = sqlite.RegisterDeterministicScalarFunction("pos_l2", 4, posL2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("pos_scale_mass", 2, posScaleMassImpl)
	return nil
}

func asFloat(arg driver.Value) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("pos: unsupported argument type %T; want REAL or INTEGER", arg)
	}
}

// posL2Impl computes the Euclidean distance between (rt1, mz1) and
// (rt2, mz2). NULL in any argument yields NULL.
func posL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("pos_l2: expected 4 arguments, got %d", len(args))
	}
	vals := make([]float64, 4)
	for i, a := range args {
		if a == nil {
			return nil, nil
		}
		v, err := asFloat(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	dt := vals[0] - vals[2]
	dm := vals[1] - vals[3]
	return math.Sqrt(dt*dt + dm*dm), nil
}

// posScaleMassImpl rescales a mass coordinate by dividing through the given
// scale, matching the normalization applied before index queries.
func posScaleMassImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pos_scale_mass: expected 2 arguments, got %d", len(args))
	}
	if args[0] == nil || args[1] == nil {
		return nil, nil
	}
	m, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	scale, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	if scale == 0 {
		return nil, fmt.Errorf("pos_scale_mass: scale must be non-zero")
	}
	return m / scale, nil
}
