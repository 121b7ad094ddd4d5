package core

import "fmt"

// Laplacian computes the 5-point finite-difference Laplacian of src on a unit
// grid (Δx² = 1) with periodic boundaries. The result is a freshly allocated
// field; src is never mutated.
func Laplacian(src *Field) *Field {
	dst := NewFieldLike(src)
	laplacian(dst, src)
	return dst
}

// LaplacianInto writes the Laplacian of src into dst, which must share its
// shape. dst and src must not alias.
func LaplacianInto(dst, src *Field) error {
	if !src.SameShape(dst) {
		return fmt.Errorf("laplacian shape mismatch: dst %dx%d, src %dx%d", dst.W, dst.H, src.W, src.H)
	}
	laplacian(dst, src)
	return nil
}

func laplacian(dst, src *Field) {
	w, h := src.W, src.H
	for y := 0; y < h; y++ {
		up := (y - 1 + h) % h
		down := (y + 1) % h
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			sum := src.data[up*w+x] + src.data[down*w+x] +
				src.data[y*w+left] + src.data[y*w+right] -
				4*src.data[y*w+x]
			dst.data[y*w+x] = sum
		}
	}
}
