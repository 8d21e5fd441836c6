package color

import "strings"

// NamedColor associates a display name with a cube color.
type NamedColor struct {
	Name  string
	Color Color
}

// Named lists the base colors the demo builds palettes from, in display
// order.
var Named = []NamedColor{
	{"teal", MustNew(0, 2, 2)},
	{"purple", MustNew(2, 0, 2)},
	{"olive", MustNew(2, 2, 0)},
	{"bright red", MustNew(5, 0, 0)},
	{"bright green", MustNew(0, 5, 0)},
	{"bright blue", MustNew(0, 0, 5)},
	{"yellow", MustNew(5, 5, 0)},
	{"magenta", MustNew(5, 0, 5)},
}

// ByName looks up a named base color, case-insensitively. The second
// return value reports whether the name is known.
func ByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, nc := range Named {
		if nc.Name == name {
			return nc.Color, true
		}
	}
	return Color{}, false
}
