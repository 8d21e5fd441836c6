package palette

import "github.com/ddoxey/ansicolormanager/internal/color"

// colorSet is an insertion-ordered set of cube colors keyed by channel
// triple. Structural equality of the Color value type does the dedup.
type colorSet struct {
	seen  map[color.Color]struct{}
	order []color.Color
}

func newColorSet() *colorSet {
	return &colorSet{seen: make(map[color.Color]struct{})}
}

// add inserts c if it is not already present and reports whether it was
// inserted.
func (s *colorSet) add(c color.Color) bool {
	if _, ok := s.seen[c]; ok {
		return false
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

func (s *colorSet) addAll(colors []color.Color) {
	for _, c := range colors {
		s.add(c)
	}
}

func (s *colorSet) len() int {
	return len(s.order)
}

// colors returns the members in first-insertion order.
func (s *colorSet) colors() []color.Color {
	return s.order
}
