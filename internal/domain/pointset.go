package domain

import "strings"

// PointSet is an insertion-ordered collection of points without duplicates.
// Boards are small, so membership is a linear scan.
type PointSet struct {
	points []Point
}

func NewPointSet() *PointSet { return &PointSet{} }

// CopyPointSet returns an independent copy of other with the same order.
func CopyPointSet(other *PointSet) (*PointSet, error) {
	if other == nil {
		return nil, invalidf("point set to copy must not be nil")
	}
	return &PointSet{points: append([]Point(nil), other.points...)}, nil
}

// Add appends p unless an equal point is already present.
func (s *PointSet) Add(p Point) bool {
	if s.Contains(p) {
		return false
	}
	s.points = append(s.points, p)
	return true
}

// Remove deletes p, keeping the order of the remaining points.
func (s *PointSet) Remove(p Point) bool {
	i := s.indexOf(p)
	if i < 0 {
		return false
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return true
}

func (s *PointSet) Contains(p Point) bool {
	return s.indexOf(p) >= 0
}

func (s *PointSet) Size() int { return len(s.points) }

// Get returns the i-th point in insertion order.
func (s *PointSet) Get(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, invalidf("index %d has to be between 0 and %d", i, len(s.points))
	}
	return s.points[i], nil
}

// Points returns a snapshot of the points in insertion order.
func (s *PointSet) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *PointSet) indexOf(p Point) int {
	for i, q := range s.points {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}

func (s *PointSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range s.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
