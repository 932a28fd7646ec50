package matrix_test

import (
	"github.com/atlas-editor/matrix"
	"math"
	"testing"
)

func pointNear(got, want matrix.Point) bool {
	return math.Abs(got.X-want.X) <= eps && math.Abs(got.Y-want.Y) <= eps
}

func rectNear(got, want matrix.Rectangle) bool {
	return math.Abs(got.X-want.X) <= eps && math.Abs(got.Y-want.Y) <= eps &&
		math.Abs(got.W-want.W) <= eps && math.Abs(got.H-want.H) <= eps
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		p    matrix.Point
		want matrix.Point
	}{
		{"identity", matrix.Identity(), matrix.Point{2, 3}, matrix.Point{2, 3}},
		{"translate", matrix.Identity().Translated(10, 20), matrix.Point{2, 3}, matrix.Point{12, 23}},
		{"scale", matrix.Identity().Scaled(2, 3), matrix.Point{2, 3}, matrix.Point{4, 9}},
		{"rotate ccw", matrix.Identity().Rotated(90), matrix.Point{1, 0}, matrix.Point{0, 1}},
		{"rotate ccw y axis", matrix.Identity().Rotated(90), matrix.Point{0, 1}, matrix.Point{-1, 0}},
		{"scale then translate", matrix.Identity().Scaled(2, 2).Translated(5, 5), matrix.Point{1, 1}, matrix.Point{7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.p); !pointNear(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestApplyIgnoresThirdColumn(t *testing.T) {
	// Application reads the first two columns only, so a raw grid with a
	// non-standard third column transforms points like its shorthand.
	m := matrix.FromGrid([3][3]float64{{1, 0, 99}, {0, 1, 99}, {5, 6, 99}})
	if got, want := m.Apply(matrix.Point{1, 1}), (matrix.Point{6, 7}); got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApplyRect(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		r    matrix.Rectangle
		want matrix.Rectangle
	}{
		{"identity", matrix.Identity(), matrix.Rectangle{1, 2, 3, 4}, matrix.Rectangle{1, 2, 3, 4}},
		{"translate", matrix.Identity().Translated(10, 20), matrix.Rectangle{0, 0, 2, 1}, matrix.Rectangle{10, 20, 2, 1}},
		{"scale", matrix.Identity().Scaled(2, 3), matrix.Rectangle{1, 1, 1, 1}, matrix.Rectangle{2, 3, 2, 3}},
		{"rotate 90", matrix.Identity().Rotated(90), matrix.Rectangle{0, 0, 2, 1}, matrix.Rectangle{-1, 0, 1, 2}},
		{"rotate 45 grows", matrix.Identity().Rotated(45), matrix.Rectangle{0, 0, 1, 1},
			matrix.Rectangle{-math.Sqrt2 / 2, 0, math.Sqrt2, math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ApplyRect(tt.r); !rectNear(got, tt.want) {
				t.Errorf("ApplyRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
