package geo

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside [0,Width] or [0,Height].
var ErrOutOfBounds = errors.New("coordinate out of canvas bounds")

// BoundedPoint is a screen coordinate constrained to the canvas.
// Both coordinates always satisfy 0 <= x <= Width and 0 <= y <= Height;
// construction and every setter re-validate, so a BoundedPoint in hand
// is always a valid screen position.
type BoundedPoint struct {
	x int
	y int
}

// NewBoundedPoint builds a point from the given coordinates.
// Inputs are truncated toward zero before validation. Returns
// ErrOutOfBounds if either coordinate falls outside the canvas.
func NewBoundedPoint(x, y float64) (BoundedPoint, error) {
	xi, yi := int(x), int(y)
	if err := checkBound("x", xi, Width); err != nil {
		return BoundedPoint{}, err
	}
	if err := checkBound("y", yi, Height); err != nil {
		return BoundedPoint{}, err
	}
	return BoundedPoint{x: xi, y: yi}, nil
}

// X returns the x coordinate.
func (p BoundedPoint) X() int {
	return p.x
}

// Y returns the y coordinate.
func (p BoundedPoint) Y() int {
	return p.y
}

// SetX replaces the x coordinate. The value is truncated toward zero and
// validated; on ErrOutOfBounds the point is left unchanged.
func (p *BoundedPoint) SetX(value float64) error {
	v := int(value)
	if err := checkBound("x", v, Width); err != nil {
		return err
	}
	p.x = v
	return nil
}

// SetY replaces the y coordinate. Same contract as SetX.
func (p *BoundedPoint) SetY(value float64) error {
	v := int(value)
	if err := checkBound("y", v, Height); err != nil {
		return err
	}
	p.y = v
	return nil
}

// Equals reports whether both coordinates match exactly.
func (p BoundedPoint) Equals(other BoundedPoint) bool {
	return p.x == other.x && p.y == other.y
}

func (p BoundedPoint) String() string {
	return fmt.Sprintf("BoundedPoint(%d, %d)", p.x, p.y)
}

func checkBound(axis string, value, limit int) error {
	if value < 0 || value > limit {
		return fmt.Errorf("%w: %s=%d, want 0..%d", ErrOutOfBounds, axis, value, limit)
	}
	return nil
}
