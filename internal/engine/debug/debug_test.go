package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

func TestBoxWireframeVertices(t *testing.T) {
	box := picking.Box{Min: math.Vec3{}, Max: math.Vec3{X: 1, Y: 2, Z: 3}}
	v := BoxWireframeVertices(box, 0)

	if len(v) != BBoxWireframeVertexCount*3 {
		t.Fatalf("got %d floats, want %d", len(v), BBoxWireframeVertexCount*3)
	}

	seen := map[[6]float32]bool{}
	for i := 0; i < len(v); i += 6 {
		a := math.Vec3{X: v[i], Y: v[i+1], Z: v[i+2]}
		b := math.Vec3{X: v[i+3], Y: v[i+4], Z: v[i+5]}
		d := b.Sub(a).Abs()
		changed := 0
		for _, c := range []float32{d.X, d.Y, d.Z} {
			if c != 0 {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge %v-%v is not axis aligned", a, b)
		}
		key := [6]float32{a.X, a.Y, a.Z, b.X, b.Y, b.Z}
		rev := [6]float32{b.X, b.Y, b.Z, a.X, a.Y, a.Z}
		if seen[key] || seen[rev] {
			t.Errorf("edge %v-%v repeated", a, b)
		}
		seen[key] = true
	}
}

func TestBoxWireframePadding(t *testing.T) {
	box := picking.Box{Min: math.Vec3{}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	v := BoxWireframeVertices(box, 0.5)
	for i, f := range v {
		if f != -0.5 && f != 1.5 {
			t.Fatalf("vertex component %d = %v, want -0.5 or 1.5", i, f)
		}
	}
}

func TestLayerWireframeTransforms(t *testing.T) {
	box := picking.Box{Min: math.Vec3{X: 1}, Max: math.Vec3{X: 2, Y: 1, Z: 1}}
	boxes := []picking.Box{box, box}
	transforms := []math.Mat4{math.Identity(), math.Scale(-1, 1, 1)}

	v := LayerWireframeVertices(boxes, transforms, 0)
	if len(v) != 2*BBoxWireframeVertexCount*3 {
		t.Fatalf("got %d floats", len(v))
	}
	half := BBoxWireframeVertexCount * 3
	for i := 0; i < half; i += 3 {
		if v[half+i] != -v[i] {
			t.Errorf("mirrored x = %v, want %v", v[half+i], -v[i])
		}
	}

	if got := LayerWireframeVertices(boxes, nil, 0); len(got) != len(v) {
		t.Errorf("untransformed length = %d, want %d", len(got), len(v))
	}
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "cube")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// Two rows: bottom row red, top row blue, in GL order.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	name, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Dir(name) != dir || !strings.HasPrefix(filepath.Base(name), "cube_2024-05-01_12-00-00") {
		t.Errorf("unexpected file name %s", name)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Errorf("top-left pixel should be blue after flip, got r=%d b=%d", r, b)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "cube")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestGenerateFilenameUnique(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }
	if a, b := sc.GenerateFilename(), sc.GenerateFilename(); a == b {
		t.Errorf("two captures in the same second share name %s", a)
	}
}
