// Package polygon is the Liskov-safe counterpart of package lsp. Polygon
// promises only an area, and Rectangle and Square are separate immutable
// values, so neither can be substituted somewhere it would break a caller.
package polygon

import (
	"errors"
	"math"
)

// Dimension errors returned by the constructors.
var (
	ErrNegativeDimension  = errors.New("dimension must not be negative")
	ErrNonFiniteDimension = errors.New("dimension must be a finite number")
)

// checkDimension rejects sides for which the area laws do not hold.
func checkDimension(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNonFiniteDimension
	}
	if x < 0 {
		return ErrNegativeDimension
	}
	return nil
}

// Polygon is anything with an area.
type Polygon interface {
	Area() float64
}

// Rectangle is an immutable width × height rectangle.
// The zero value is a degenerate rectangle with area 0.
type Rectangle struct {
	width  float64
	height float64
}

var _ Polygon = Rectangle{}

// NewRectangle returns a width × height rectangle.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := checkDimension(width); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension(height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{width: width, height: height}, nil
}

// Area returns width × height.
func (r Rectangle) Area() float64 { return r.width * r.height }

// Square is an immutable square.
// The zero value is a degenerate square with area 0.
type Square struct {
	side float64
}

var _ Polygon = Square{}

// NewSquare returns a square with the given side.
func NewSquare(side float64) (Square, error) {
	if err := checkDimension(side); err != nil {
		return Square{}, err
	}
	return Square{side: side}, nil
}

// Area returns side².
func (s Square) Area() float64 { return math.Pow(s.side, 2) }

// TotalArea sums the areas of ps.
func TotalArea(ps ...Polygon) float64 {
	var total float64
	for _, p := range ps {
		total += p.Area()
	}
	return total
}
