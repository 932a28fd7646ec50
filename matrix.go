// Package matrix implements the 3x3 transformation matrices used by PDF
// content streams.
//
// A content stream matrix is summarized by the shorthand (a, b, c, d, e, f),
// the six free coefficients of the grid
//
//	/ a b 0 \
//	| c d 0 |
//	\ e f 1 /
//
// The third column is fixed at (0, 0, 1) by the homogeneous-coordinate
// convention. PDF uses row vectors: a point p = (x, y, 1) is transformed as
// p' = p·M, so m.Mul(n) is the transform that applies m first and n second.
//
// A Matrix is an immutable value. Every transformation returns a new Matrix
// and never modifies its receiver; copying one is plain value assignment.
// The zero Matrix is the all-zero grid, not the identity; use Identity.
package matrix

import (
	"fmt"
	"math"
)

// ErrInvalidArgument reports constructor input that matches none of the
// accepted shapes. The returned error carries the offending input.
var ErrInvalidArgument = fmt.Errorf("invalid matrix arguments")

// A Matrix represents a PDF content stream transformation matrix.
type Matrix struct {
	grid [3][3]float64
}

var ident = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{grid: ident}
}

// New returns the matrix with shorthand (a, b, c, d, e, f).
func New(a, b, c, d, e, f float64) Matrix {
	return Matrix{grid: [3][3]float64{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}}
}

// FromShorthand returns the matrix described by a six-element shorthand
// sequence, in the order a, b, c, d, e, f. A sequence of any other length
// fails with ErrInvalidArgument.
func FromShorthand(seq []float64) (Matrix, error) {
	if len(seq) != 6 {
		return Matrix{}, fmt.Errorf("%w: %v", ErrInvalidArgument, seq)
	}
	return New(seq[0], seq[1], seq[2], seq[3], seq[4], seq[5]), nil
}

// FromGrid returns the matrix with the given grid, copied verbatim.
// The third column is not checked against the conventional (0, 0, 1);
// callers supplying a different column get exactly what they supplied,
// and all operations remain well defined over it.
func FromGrid(grid [3][3]float64) Matrix {
	return Matrix{grid: grid}
}

// Mul returns the matrix product m·n, concatenating the two transforms:
// the result applies m first and n second. The product is computed over
// the full grid, so matrices built by FromGrid with a non-standard third
// column multiply correctly too.
func (m Matrix) Mul(n Matrix) Matrix {
	var z Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				z.grid[i][j] += m.grid[i][k] * n.grid[k][j]
			}
		}
	}
	return z
}

// Scaled concatenates a scaling of the x and y axes by the given factors.
func (m Matrix) Scaled(x, y float64) Matrix {
	return m.Mul(New(x, 0, 0, y, 0, 0))
}

// Rotated concatenates a rotation by the given angle in degrees.
// Positive angles rotate counter-clockwise.
func (m Matrix) Rotated(degrees float64) Matrix {
	theta := degrees / 180 * math.Pi
	c, s := math.Cos(theta), math.Sin(theta)
	return m.Mul(New(c, s, -s, c, 0, 0))
}

// Translated concatenates a translation by (x, y).
func (m Matrix) Translated(x, y float64) Matrix {
	return m.Mul(New(1, 0, 0, 1, x, y))
}

// Shorthand returns the six-tuple (a, b, c, d, e, f) that describes m.
func (m Matrix) Shorthand() [6]float64 {
	return [6]float64{m.A(), m.B(), m.C(), m.D(), m.E(), m.F()}
}

// A returns the coefficient at grid position (0, 0).
func (m Matrix) A() float64 { return m.grid[0][0] }

// B returns the coefficient at grid position (0, 1).
func (m Matrix) B() float64 { return m.grid[0][1] }

// C returns the coefficient at grid position (1, 0).
func (m Matrix) C() float64 { return m.grid[1][0] }

// D returns the coefficient at grid position (1, 1).
func (m Matrix) D() float64 { return m.grid[1][1] }

// E returns the coefficient at grid position (2, 0), conventionally the
// translation on the x axis.
func (m Matrix) E() float64 { return m.grid[2][0] }

// F returns the coefficient at grid position (2, 1), conventionally the
// translation on the y axis.
func (m Matrix) F() float64 { return m.grid[2][1] }

// Grid returns a copy of the full 3x3 grid, including whatever third
// column the matrix was built with.
func (m Matrix) Grid() [3][3]float64 {
	return m.grid
}

// Equal reports whether m and n have the same shorthand, compared
// element-wise with no tolerance. Grids that differ only in the third
// column compare equal.
func (m Matrix) Equal(n Matrix) bool {
	return m.Shorthand() == n.Shorthand()
}

// Encode returns the shorthand in the fixed-precision ASCII form embedded
// in content streams ahead of a matrix-setting operator: six fields
// formatted %.6f, space-separated, in the order a b c d e f, with no
// surrounding whitespace.
func (m Matrix) Encode() []byte {
	return fmt.Appendf(nil, "%.6f %.6f %.6f %.6f %.6f %.6f",
		m.A(), m.B(), m.C(), m.D(), m.E(), m.F())
}

// String returns a diagnostic representation exposing the full grid.
// The format is not stable and not meant to be parsed.
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(%v)", m.grid)
}
