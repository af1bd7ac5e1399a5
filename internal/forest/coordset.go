package forest

import "slices"

// CoordSet is an unordered set of coordinates.
type CoordSet struct {
	m map[Coord]struct{}
}

// NewCoordSet returns an empty set.
func NewCoordSet() CoordSet {
	return CoordSet{m: make(map[Coord]struct{})}
}

// Add inserts every given coordinate. Duplicates are ignored.
func (s CoordSet) Add(coords ...Coord) {
	for _, c := range coords {
		s.m[c] = struct{}{}
	}
}

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

func (s CoordSet) Len() int {
	return len(s.m)
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

func compareCoords(a, b Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
