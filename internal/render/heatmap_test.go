package render

import (
	"math"
	"testing"

	"turing-rd/internal/core"
)

func TestColormapClampsToEnds(t *testing.T) {
	cm := NewKindlmann()
	if cm.At(-0.5) != cm.At(0) {
		t.Fatal("values below range must clamp to the first entry")
	}
	if cm.At(1.5) != cm.At(1) {
		t.Fatal("values above range must clamp to the last entry")
	}
	if cm.At(math.NaN()) != cm.At(0) {
		t.Fatal("NaN must clamp to the first entry")
	}
}

func TestFieldRange(t *testing.T) {
	lo, hi := FieldRange([]float64{0.5, -1, 2, 0})
	if lo != -1 || hi != 2 {
		t.Fatalf("FieldRange = [%v, %v], want [-1, 2]", lo, hi)
	}

	// Constant fields fall back to the unit range.
	lo, hi = FieldRange([]float64{3, 3, 3})
	if lo != 0 || hi != 1 {
		t.Fatalf("constant field range = [%v, %v], want [0, 1]", lo, hi)
	}

	// Non-finite values are ignored when finite ones exist.
	lo, hi = FieldRange([]float64{math.NaN(), 1, math.Inf(1), 4})
	if lo != 1 || hi != 4 {
		t.Fatalf("range with hazards = [%v, %v], want [1, 4]", lo, hi)
	}

	// All-hazard fields fall back to the unit range.
	lo, hi = FieldRange([]float64{math.NaN(), math.Inf(-1)})
	if lo != 0 || hi != 1 {
		t.Fatalf("all-hazard range = [%v, %v], want [0, 1]", lo, hi)
	}
}

func TestFillHeatRGBAMapsEnds(t *testing.T) {
	cm := NewKindlmann()
	vals := []float64{0, 10}
	buf := make([]byte, 8)
	FillHeatRGBA(buf, vals, 0, 10, cm)

	first := cm.At(0)
	last := cm.At(1)
	if buf[0] != first.R || buf[1] != first.G || buf[2] != first.B || buf[3] != first.A {
		t.Fatal("lo must map to the first colormap entry")
	}
	if buf[4] != last.R || buf[5] != last.G || buf[6] != last.B || buf[7] != last.A {
		t.Fatal("hi must map to the last colormap entry")
	}
}

func TestHeatmapUsesFieldOwnRange(t *testing.T) {
	f, err := core.NewField(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	f.Set(0, 0, -3)
	f.Set(1, 0, 7)

	cm := NewSmoothBlueRed()
	buf := make([]byte, 8)
	Heatmap(buf, f, cm)

	first := cm.At(0)
	last := cm.At(1)
	if buf[0] != first.R || buf[3] != first.A {
		t.Fatal("field minimum must map to the colormap floor")
	}
	if buf[4] != last.R || buf[7] != last.A {
		t.Fatal("field maximum must map to the colormap ceiling")
	}
}
