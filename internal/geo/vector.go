package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrIndexOutOfRange = errors.New("vector index out of range")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Vector2D is a free 2D displacement. Components carry no canvas
// restriction and may be negative or arbitrarily large.
//
// Constructor and setter inputs are truncated toward zero before storing;
// arithmetic results (Scale, Divide) keep whatever the math produces, so a
// vector obtained from Divide may hold fractional components.
type Vector2D struct {
	x float64
	y float64
}

// NewVector2D builds a vector from raw components, truncating each toward
// zero.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{x: math.Trunc(x), y: math.Trunc(y)}
}

// VectorFromPoints builds the displacement from start to end.
func VectorFromPoints(start, end BoundedPoint) Vector2D {
	return Vector2D{
		x: float64(end.X() - start.X()),
		y: float64(end.Y() - start.Y()),
	}
}

// X returns the x component.
func (v Vector2D) X() float64 {
	return v.x
}

// Y returns the y component.
func (v Vector2D) Y() float64 {
	return v.y
}

// SetX replaces the x component, truncating toward zero.
func (v *Vector2D) SetX(value float64) {
	v.x = math.Trunc(value)
}

// SetY replaces the y component, truncating toward zero.
func (v *Vector2D) SetY(value float64) {
	v.y = math.Trunc(value)
}

// At returns component i: 0 is x, 1 is y. Any other index yields
// ErrIndexOutOfRange.
func (v Vector2D) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	default:
		return 0, fmt.Errorf("%w: %d, want 0 or 1", ErrIndexOutOfRange, i)
	}
}

// SetAt replaces component i, truncating toward zero. Any index other than
// 0 or 1 yields ErrIndexOutOfRange and leaves the vector unchanged.
func (v *Vector2D) SetAt(i int, value float64) error {
	switch i {
	case 0:
		v.x = math.Trunc(value)
	case 1:
		v.y = math.Trunc(value)
	default:
		return fmt.Errorf("%w: %d, want 0 or 1", ErrIndexOutOfRange, i)
	}
	return nil
}

// Components returns the components as a fresh [x, y] slice. Each call
// produces a new slice, so iteration is restartable and callers may mutate
// the result freely.
func (v Vector2D) Components() []float64 {
	return []float64{v.x, v.y}
}

// Len returns the number of components, always 2.
func (v Vector2D) Len() int {
	return 2
}

// Equals reports whether both components match exactly.
func (v Vector2D) Equals(other Vector2D) bool {
	return v.x == other.x && v.y == other.y
}

// Magnitude returns the Euclidean norm.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.x, v.y)
}

// Add returns the component-wise sum. The receiver is not modified.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{x: v.x + other.x, y: v.y + other.y}
}

// Sub returns the component-wise difference. The receiver is not modified.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{x: v.x - other.x, y: v.y - other.y}
}

// Scale returns the vector multiplied by a scalar. Integer-valued inputs
// scaled by an integer-valued scalar stay integer-valued.
func (v Vector2D) Scale(scalar float64) Vector2D {
	return Vector2D{x: v.x * scalar, y: v.y * scalar}
}

// Divide returns the vector divided by a scalar. The result may carry
// fractional components. Returns ErrDivisionByZero when scalar is zero;
// Inf/NaN components are never produced.
func (v Vector2D) Divide(scalar float64) (Vector2D, error) {
	if scalar == 0 {
		return Vector2D{}, ErrDivisionByZero
	}
	return Vector2D{x: v.x / scalar, y: v.y / scalar}, nil
}

// Dot returns the dot product with other.
func (v Vector2D) Dot(other Vector2D) float64 {
	return Dot(v, other)
}

// Cross returns the 2D scalar cross product with other.
func (v Vector2D) Cross(other Vector2D) float64 {
	return Cross(v, other)
}

// Dot returns the dot product of two vectors.
func Dot(a, b Vector2D) float64 {
	return a.x*b.x + a.y*b.y
}

// Cross returns the 2D scalar cross product, the signed z-component of the
// 3D cross product. Its sign gives the orientation of b relative to a.
func Cross(a, b Vector2D) float64 {
	return a.x*b.y - a.y*b.x
}

// MixedProduct returns the scalar triple product of two vectors lying in
// the plane. Two 2D vectors span no volume, so the result is always zero;
// the function exists to make that degeneracy explicit at call sites.
func MixedProduct(_, _ Vector2D) float64 {
	return 0
}

func (v Vector2D) String() string {
	return "Vector2D(" + formatComponent(v.x) + ", " + formatComponent(v.y) + ")"
}

// formatComponent prints integer-valued components without a decimal
// point and fractional ones exactly.
func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
