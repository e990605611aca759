package predicate

import "math"

// Default tolerances for Approx. A comparison passes when
// |got-want| <= absTol + relTol*|want|.
const (
	DefaultAbsTol = 1e-8
	DefaultRelTol = 1e-4
)

// Tolerance configures an Approx comparison.
type Tolerance struct {
	// Abs is the absolute tolerance.
	Abs float64

	// Rel is the relative tolerance, scaled by the magnitude
	// of the expected value.
	Rel float64
}

// ApproxOption adjusts the tolerance used by Approx.
type ApproxOption func(*Tolerance)

// WithAbsTol sets the absolute tolerance.
func WithAbsTol(abs float64) ApproxOption {
	return func(t *Tolerance) {
		t.Abs = abs
	}
}

// WithRelTol sets the relative tolerance.
func WithRelTol(rel float64) ApproxOption {
	return func(t *Tolerance) {
		t.Rel = rel
	}
}

// Approx returns a predicate testing approximate equality with
// want. Scalars compare within tolerance; sequences of numbers
// compare element-wise and require matching length. A shape or
// type mismatch is a plain false, never a panic.
func Approx(want any, opts ...ApproxOption) Predicate {
	tol := Tolerance{Abs: DefaultAbsTol, Rel: DefaultRelTol}
	for _, opt := range opts {
		opt(&tol)
	}

	return func(got any) bool {
		if ws, ok := toFloatSlice(want); ok {
			gs, ok := toFloatSlice(got)
			if !ok || len(ws) != len(gs) {
				return false
			}
			for i := range ws {
				if !within(gs[i], ws[i], tol) {
					return false
				}
			}
			return true
		}

		w, ok := toFloat64(want)
		if !ok {
			return false
		}
		g, ok := toFloat64(got)
		if !ok {
			return false
		}
		return within(g, w, tol)
	}
}

// within reports |got-want| <= abs + rel*|want|.
func within(got, want float64, tol Tolerance) bool {
	return math.Abs(got-want) <=
		tol.Abs+tol.Rel*math.Abs(want)
}

// toFloat64 coerces common numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toFloatSlice coerces numeric slices ([]float64, []int,
// []any of numbers) to []float64.
func toFloatSlice(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, item := range s {
			n, ok := toFloat64(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}
	return nil, false
}
