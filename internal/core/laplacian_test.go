package core

import (
	"slices"
	"testing"
)

func TestLaplacianUniformFieldIsZero(t *testing.T) {
	f, err := NewField(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	f.Fill(1.5)

	l := Laplacian(f)
	for i, v := range l.Values() {
		if v != 0 {
			t.Fatalf("uniform field must have zero curvature, got %v at %d", v, i)
		}
	}
}

func TestLaplacianDoesNotMutateInput(t *testing.T) {
	f, err := NewField(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	f.Set(1, 2, 3)
	f.Set(0, 0, -1)
	before := append([]float64(nil), f.Values()...)

	Laplacian(f)

	if !slices.Equal(before, f.Values()) {
		t.Fatal("Laplacian must not mutate its input")
	}
}

func TestLaplacianPeriodicStencil(t *testing.T) {
	w, h := 5, 4
	f, err := NewField(w, h)
	if err != nil {
		t.Fatal(err)
	}
	f.Set(0, 0, 1)

	l := Laplacian(f)

	want := map[[2]int]float64{
		{0, 0}:     -4,
		{1, 0}:     1,
		{0, 1}:     1,
		{w - 1, 0}: 1, // left neighbor wraps to the right edge
		{0, h - 1}: 1, // up neighbor wraps to the bottom edge
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := l.At(x, y)
			if exp, ok := want[[2]int{x, y}]; ok {
				if got != exp {
					t.Errorf("L[%d,%d] = %v, want %v", x, y, got, exp)
				}
			} else if got != 0 {
				t.Errorf("L[%d,%d] = %v, want 0 outside the stencil", x, y, got)
			}
		}
	}
}

func TestLaplacianIntoShapeMismatch(t *testing.T) {
	src, _ := NewField(4, 4)
	dst, _ := NewField(4, 5)
	if err := LaplacianInto(dst, src); err == nil {
		t.Fatal("shape mismatch must be rejected")
	}
}

func TestLaplacianIntoMatchesLaplacian(t *testing.T) {
	src, _ := NewField(3, 5)
	vals := src.Values()
	for i := range vals {
		vals[i] = float64(i%7) * 0.25
	}
	dst := NewFieldLike(src)
	if err := LaplacianInto(dst, src); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(dst.Values(), Laplacian(src).Values()) {
		t.Fatal("LaplacianInto must agree with Laplacian")
	}
}
