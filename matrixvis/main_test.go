package main

import (
	"github.com/atlas-editor/matrix"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transform.txt")
	script := `# place the stamp
scale 2 2
translate 10 20 # move up and right

rotate 45
`
	if err := os.WriteFile(path, []byte(script), 0o666); err != nil {
		t.Fatal(err)
	}

	args, err := readScript(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "scale 2 2 translate 10 20 rotate 45"
	if got := strings.Join(args, " "); got != want {
		t.Errorf("readScript = %q, want %q", got, want)
	}
}

func TestReadScriptMissing(t *testing.T) {
	if _, err := readScript(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("readScript on a missing file did not fail")
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		a, b, want matrix.Rectangle
	}{
		{matrix.Rectangle{X: 0, Y: 0, W: 1, H: 1}, matrix.Rectangle{X: 0, Y: 0, W: 1, H: 1}, matrix.Rectangle{X: 0, Y: 0, W: 1, H: 1}},
		{matrix.Rectangle{X: 0, Y: 0, W: 1, H: 1}, matrix.Rectangle{X: -1, Y: -1, W: 1, H: 1}, matrix.Rectangle{X: -1, Y: -1, W: 2, H: 2}},
		{matrix.Rectangle{X: 0, Y: 0, W: 4, H: 4}, matrix.Rectangle{X: 1, Y: 1, W: 1, H: 1}, matrix.Rectangle{X: 0, Y: 0, W: 4, H: 4}},
		{matrix.Rectangle{X: 0, Y: 0, W: 1, H: 1}, matrix.Rectangle{X: 3, Y: 0, W: 1, H: 2}, matrix.Rectangle{X: 0, Y: 0, W: 4, H: 2}},
	}
	for _, test := range tests {
		if got := union(test.a, test.b); got != test.want {
			t.Errorf("union(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestVisualize(t *testing.T) {
	img := visualize(matrix.Identity(), 100)

	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != 100 || dy != 100 {
		t.Fatalf("image is %dx%d, want 100x100", dx, dy)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want white", got)
	}

	// The grid, the filled square and the encoded label must all have
	// left pixels behind.
	for _, c := range []color.RGBA{
		{204, 0, 0, 255},     // transformed grid
		{255, 214, 214, 255}, // fill
		{0, 0, 0, 255},       // label
	} {
		if !contains(img, c) {
			t.Errorf("image has no %v pixel", c)
		}
	}
}

func contains(img *image.RGBA, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}
