package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Add returns the point translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Area represents a rectangular region in screen cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Origin returns the top-left corner
func (a Area) Origin() Point {
	return Point{X: a.X, Y: a.Y}
}

// At returns a same-sized area with its top-left corner moved to p
func (a Area) At(p Point) Area {
	a.X, a.Y = p.X, p.Y
	return a
}

// Translate returns the area shifted by d
func (a Area) Translate(d Point) Area {
	a.X += d.X
	a.Y += d.Y
	return a
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
