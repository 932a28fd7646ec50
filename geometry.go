package matrix

// A Point represents an X, Y pair.
type Point struct {
	X float64
	Y float64
}

// A Rectangle represents an axis-aligned rectangle anchored at its
// lower-left corner, in the bottom-up coordinate system PDF pages use.
type Rectangle struct {
	X, Y, W, H float64
}

// Apply transforms p by m, treating p as the row vector (x, y, 1):
//
//	(x', y') = (a·x + c·y + e, b·x + d·y + f)
func (m Matrix) Apply(p Point) Point {
	return Point{
		m.grid[0][0]*p.X + m.grid[1][0]*p.Y + m.grid[2][0],
		m.grid[0][1]*p.X + m.grid[1][1]*p.Y + m.grid[2][1],
	}
}

// ApplyRect transforms the four corners of r by m and returns the
// enclosing axis-aligned rectangle. Under rotation the result covers the
// rotated corners rather than matching the rotated shape exactly; this is
// how page boxes move under a transform.
func (m Matrix) ApplyRect(r Rectangle) Rectangle {
	return enclosingRectangle([]Point{
		m.Apply(Point{r.X, r.Y}),
		m.Apply(Point{r.X + r.W, r.Y}),
		m.Apply(Point{r.X + r.W, r.Y + r.H}),
		m.Apply(Point{r.X, r.Y + r.H}),
	})
}

func enclosingRectangle(pts []Point) Rectangle {
	x1, y1, x2, y2 := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, pt := range pts[1:] {
		x1 = min(x1, pt.X)
		x2 = max(x2, pt.X)
		y1 = min(y1, pt.Y)
		y2 = max(y2, pt.Y)
	}
	return Rectangle{x1, y1, x2 - x1, y2 - y1}
}
