package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrNonPositiveDimension indicates W or H was less than 1.
	ErrNonPositiveDimension = errors.New("grid: width and height must both be at least 1")
	// ErrObstacleOutOfBounds indicates an obstacle cell fell outside [0,W)x[0,H).
	ErrObstacleOutOfBounds = errors.New("grid: obstacle cell is out of bounds")
)
