package polytope

import "errors"

// ErrUnsupportedShapeKind is returned when a shape name or Kind is not one of
// the recognized variants. The wrapping error carries the offending value.
var ErrUnsupportedShapeKind = errors.New("unsupported shape kind")

// ErrDegenerateBasis is returned by the simplex generator when Gram–Schmidt
// cannot produce a full orthonormal basis for the simplex hyperplane.
var ErrDegenerateBasis = errors.New("degenerate basis")

// ErrDimensionTooLarge is returned when a shape's vertex count would not fit
// in a uint32 or one of its buffers could not be addressed.
var ErrDimensionTooLarge = errors.New("dimension too large")
