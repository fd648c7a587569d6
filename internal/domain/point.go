package domain

import "fmt"

// Point is an immutable location in (x, y) grid space. Both components are
// non-negative; the zero value is the origin.
type Point struct {
	x, y int
}

// NewPoint returns the point (x, y) or an error if a component is negative.
func NewPoint(x, y int) (Point, error) {
	if x < 0 || y < 0 {
		return Point{}, invalidf("point (%d, %d) is out of bounds", x, y)
	}
	return Point{x: x, y: y}, nil
}

// MustPoint is NewPoint for literals known to be valid. It panics otherwise.
func MustPoint(x, y int) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Point) X() int { return p.x }
func (p Point) Y() int { return p.y }

// Equal reports structural equality.
func (p Point) Equal(other Point) bool {
	return p.x == other.x && p.y == other.y
}

func (p Point) MoveLeft() (Point, error)  { return NewPoint(p.x-1, p.y) }
func (p Point) MoveRight() (Point, error) { return NewPoint(p.x+1, p.y) }
func (p Point) MoveUp() (Point, error)    { return NewPoint(p.x, p.y-1) }
func (p Point) MoveDown() (Point, error)  { return NewPoint(p.x, p.y+1) }

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
