package rectpart

import "fmt"

// Point is a position on the integer lattice.
type Point struct {
	X, Y int32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by two opposite corners, with
// Min.X < Max.X and Min.Y < Max.Y.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of r.
func (r Rect) Dx() int32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() int32 {
	return r.Max.Y - r.Min.Y
}

// Area returns the area of r.
func (r Rect) Area() int64 {
	return int64(r.Dx()) * int64(r.Dy())
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

func iMin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func iMax(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func iAbs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
