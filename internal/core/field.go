package core

import "fmt"

// Field stores a 2D grid of float64 concentration values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions. Dimensions must be
// positive.
func NewField(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("field dimensions must be positive, got %dx%d", w, h)
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}, nil
}

// Values exposes the backing slice so callers can read/write values directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. A single
// modulus pass resolves offsets of at most one full grid extent; the stencil
// code only ever passes offsets of ±1 from an in-range coordinate.
func (f *Field) Wrap(x, y int) (int, int) {
	x = (x%f.W + f.W) % f.W
	y = (y%f.H + f.H) % f.H
	return x, y
}

// At reads the value at in-range coordinates (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// AtWrap reads the value at (x, y), wrapping out-of-range coordinates onto
// the torus.
func (f *Field) AtWrap(x, y int) float64 {
	x, y = f.Wrap(x, y)
	return f.data[y*f.W+x]
}

// Set writes the value at in-range coordinates (x, y). Writes never wrap.
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// SameShape reports whether both fields have identical dimensions.
func (f *Field) SameShape(other *Field) bool {
	return other != nil && f.W == other.W && f.H == other.H
}

// NewFieldLike allocates a zeroed field with the same shape as f.
func NewFieldLike(f *Field) *Field {
	return &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// Fill sets every cell to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}
