// Matrixvis renders a PNG visualization of a PDF transformation matrix.
// The image shows the unit square and its grid in gray, their image under
// the composed transform in red, and the encoded operand line. The y axis
// grows upward, matching the bottom-up page coordinates of PDF.
//
//	matrixvis -o out.png rotate 30 translate 2 0
//	matrixvis -f transform.txt -watch
package main

import (
	"flag"
	"fmt"
	"github.com/atlas-editor/matrix"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	out    = flag.String("o", "matrix.png", "output file")
	size   = flag.Int("size", 400, "image size in pixels")
	script = flag.String("f", "", "read operations from file instead of arguments")
	watch  = flag.Bool("watch", false, "keep running and re-render when the -f file changes")
)

// watchDebounce coalesces the bursts of events editors emit per save.
const watchDebounce = 500 * time.Millisecond

func usage() {
	fmt.Fprintf(os.Stderr, "usage: matrixvis [-o out.png] [-size N] [-f file [-watch]] [operation...]\n")
	fmt.Fprintf(os.Stderr, "operations:\n")
	fmt.Fprintf(os.Stderr, "  scale X Y\n")
	fmt.Fprintf(os.Stderr, "  rotate DEGREES\n")
	fmt.Fprintf(os.Stderr, "  translate X Y\n")
	fmt.Fprintf(os.Stderr, "  matrix A B C D E F\n")
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("matrixvis: ")

	flag.Usage = usage
	flag.Parse()

	if *script == "" && flag.NArg() == 0 {
		usage()
	}
	if *script != "" && flag.NArg() > 0 {
		log.Fatal("cannot mix -f with operation arguments")
	}
	if *watch && *script == "" {
		log.Fatal("-watch requires -f")
	}

	if err := render(); err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := watchScript(*script, render); err != nil {
			log.Fatal(err)
		}
	}
}

// render composes the requested transform and writes the visualization.
func render() error {
	args := flag.Args()
	if *script != "" {
		var err error
		args, err = readScript(*script)
		if err != nil {
			return err
		}
	}

	m, err := compose(args)
	if err != nil {
		return err
	}
	return save(visualize(m, *size), *out)
}

func visualize(m matrix.Matrix, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// Fit the unit square and its image under m into the frame.
	unit := matrix.Rectangle{W: 1, H: 1}
	world := union(unit, m.ApplyRect(unit))

	const margin = 16.0
	span := max(world.W, world.H)
	if span == 0 {
		span = 1
	}
	s := (float64(size) - 2*margin) / span
	px := func(p matrix.Point) matrix.Point {
		return matrix.Point{X: margin + (p.X-world.X)*s, Y: margin + (p.Y-world.Y)*s}
	}

	// Page axes through the origin. The frame always contains the origin
	// because world encloses the unit square.
	axis := color.RGBA{120, 120, 120, 255}
	drawLine(img, px(matrix.Point{X: world.X, Y: 0}), px(matrix.Point{X: world.X + world.W, Y: 0}), axis)
	drawLine(img, px(matrix.Point{X: 0, Y: world.Y}), px(matrix.Point{X: 0, Y: world.Y + world.H}), axis)

	// Transformed unit square, filled.
	corners := []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	quad := make([]matrix.Point, len(corners))
	for i, p := range corners {
		quad[i] = px(m.Apply(p))
	}
	fillPoly(img, quad, color.RGBA{255, 214, 214, 255})

	// Unit grid: source in gray, image under m in red. Affine maps keep
	// lines straight, so transforming the endpoints is enough.
	gray := color.RGBA{190, 190, 190, 255}
	red := color.RGBA{204, 0, 0, 255}
	const cells = 4
	for i := 0; i <= cells; i++ {
		t := float64(i) / cells
		for _, ln := range [][2]matrix.Point{
			{{X: t, Y: 0}, {X: t, Y: 1}},
			{{X: 0, Y: t}, {X: 1, Y: t}},
		} {
			drawLine(img, px(ln[0]), px(ln[1]), gray)
			drawLine(img, px(m.Apply(ln[0])), px(m.Apply(ln[1])), red)
		}
	}

	// flip image via y-axis, pdf coordinates have origin in bottom left corner
	for y := 0; y < img.Bounds().Dy()/2; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c1 := img.At(x, y)
			c2 := img.At(x, img.Bounds().Dy()-y-1)
			img.Set(x, y, c2)
			img.Set(x, img.Bounds().Dy()-y-1, c1)
		}
	}

	drawLabel(img, fmt.Sprintf("%s cm", m.Encode()))
	return img
}

func union(a, b matrix.Rectangle) matrix.Rectangle {
	x1 := min(a.X, b.X)
	y1 := min(a.Y, b.Y)
	x2 := max(a.X+a.W, b.X+b.W)
	y2 := max(a.Y+a.H, b.Y+b.H)
	return matrix.Rectangle{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func fillPoly(img *image.RGBA, pts []matrix.Point, c color.Color) {
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func drawLine(img *image.RGBA, p1 matrix.Point, p2 matrix.Point, c color.Color) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) * 2
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := p1.X + t*dx
		y := p1.Y + t*dy
		img.Set(int(math.Round(x)), int(math.Round(y)), c)
	}
}

func drawLabel(img *image.RGBA, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, img.Bounds().Dy()-6),
	}
	d.DrawString(s)
}

func save(img *image.RGBA, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// readScript loads operations from a file: whitespace-separated tokens,
// one or more operations per line, # starts a comment.
func readScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var args []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		args = append(args, strings.Fields(line)...)
	}
	return args, nil
}

// watchScript re-renders whenever the script file changes. The watch is on
// the containing directory rather than the file itself, so editors that
// save by atomic rename keep being seen.
func watchScript(path string, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	log.Printf("watching %s", path)

	base := filepath.Base(path)
	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			pending = timer.C

		case <-pending:
			pending = nil
			if err := render(); err != nil {
				log.Print(err) // keep watching, the next edit may fix it
			} else {
				log.Printf("wrote %s", *out)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Print(err)
		}
	}
}

// compose concatenates the named operations onto the identity matrix,
// left to right.
func compose(args []string) (matrix.Matrix, error) {
	m := matrix.Identity()
	for len(args) > 0 {
		op := args[0]
		args = args[1:]

		switch op {
		case "scale":
			v, rest, err := operands(op, args, 2)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Scaled(v[0], v[1]), rest
		case "rotate":
			v, rest, err := operands(op, args, 1)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Rotated(v[0]), rest
		case "translate":
			v, rest, err := operands(op, args, 2)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Translated(v[0], v[1]), rest
		case "matrix":
			v, rest, err := operands(op, args, 6)
			if err != nil {
				return matrix.Matrix{}, err
			}
			n, err := matrix.FromShorthand(v)
			if err != nil {
				return matrix.Matrix{}, err
			}
			m, args = m.Mul(n), rest
		default:
			return matrix.Matrix{}, fmt.Errorf("unknown operation %q", op)
		}
	}
	return m, nil
}

// operands parses the leading n arguments of args as floats and returns
// them along with the remaining arguments.
func operands(op string, args []string, n int) ([]float64, []string, error) {
	if len(args) < n {
		return nil, nil, fmt.Errorf("%s: want %d operands, have %d", op, n, len(args))
	}
	v := make([]float64, n)
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: bad operand %q", op, args[i])
		}
		v[i] = f
	}
	return v, args[n:], nil
}
