// Package lsp illustrates the Liskov Substitution Principle: code written
// against a base type must keep working, unchanged, when handed a subtype.
//
// This package shows the rule being broken. Square embeds Rectangle and keeps
// its sides equal by overriding SetWidth, so client code that sets width and
// height independently gets a different area than the Rectangle contract
// promises. Package polygon shows the fix.
package lsp

// Shape is a mutable shape with independent width and height.
type Shape interface {
	Width() float64
	Height() float64
	SetWidth(w float64)
	SetHeight(h float64)
	Area() float64
}

// Rectangle is a Shape whose area is width × height.
type Rectangle struct {
	width  float64
	height float64
}

var _ Shape = (*Rectangle)(nil)

// Width returns the width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the height.
func (r *Rectangle) Height() float64 { return r.height }

// SetWidth sets the width only.
func (r *Rectangle) SetWidth(w float64) { r.width = w }

// SetHeight sets the height only.
func (r *Rectangle) SetHeight(h float64) { r.height = h }

// Area returns width × height.
func (r *Rectangle) Area() float64 { return r.width * r.height }

// Square is a Rectangle whose height follows its width.
// Setting the width also sets the height; setting the height alone does not
// touch the width.
type Square struct {
	Rectangle
}

var _ Shape = (*Square)(nil)

// SetWidth sets both sides.
func (s *Square) SetWidth(w float64) {
	s.width = w
	s.height = w
}

// Resize is client code written against the Rectangle contract. It sets the
// height first, then the width, and returns the resulting area, which a
// caller expects to be w × h. A Square returns w² instead.
func Resize(s Shape, w, h float64) float64 {
	s.SetHeight(h)
	s.SetWidth(w)
	return s.Area()
}

// HoldsContract reports whether Resize(s, w, h) yields w × h.
func HoldsContract(s Shape, w, h float64) bool {
	return Resize(s, w, h) == w*h
}
