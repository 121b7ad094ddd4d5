package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"turing-rd/internal/core"
)

func gradientField(t *testing.T, w, h int) *core.Field {
	t.Helper()
	f, err := core.NewField(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, float64(x+y))
		}
	}
	return f
}

func TestFieldGridAdapter(t *testing.T) {
	f := gradientField(t, 4, 3)
	g := fieldGrid{f: f}

	c, r := g.Dims()
	if c != 4 || r != 3 {
		t.Fatalf("Dims = (%d, %d), want (4, 3)", c, r)
	}
	if got := g.Z(2, 1); got != 3 {
		t.Fatalf("Z(2, 1) = %v, want 3", got)
	}
	if g.X(2) != 2 || g.Y(1) != 1 {
		t.Fatal("unit grid spacing expected")
	}
}

func TestWritePNG(t *testing.T) {
	f := gradientField(t, 8, 8)
	name := filepath.Join(t.TempDir(), "snap", "field.png")

	if err := WritePNG(f, "test field", name); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Fatalf("snapshot is not a decodable PNG: %v", err)
	}
}

func TestVideoRecorder(t *testing.T) {
	f := gradientField(t, 16, 16)
	name := filepath.Join(t.TempDir(), "run.avi")

	rec, err := NewVideoRecorder(name, 16, 16, 10)
	if err != nil {
		t.Fatalf("NewVideoRecorder failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := rec.AddFrame(f); err != nil {
			t.Fatalf("AddFrame failed: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatalf("recording missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("recording is empty")
	}
}

func TestVideoRecorderRejectsShapeMismatch(t *testing.T) {
	name := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewVideoRecorder(name, 8, 8, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()

	f := gradientField(t, 4, 4)
	if err := rec.AddFrame(f); err == nil {
		t.Fatal("mismatched frame shape must be rejected")
	}
}
