package domain

// Field is the static terrain of one grid cell.
// The zero value is not a valid field and marks an absent cell.
type Field int

const (
	fieldNone  Field = iota
	Background       // outside the playable area
	Wall             // impassable
	Floor            // open
	Target           // open goal cell for a treasure
)

// Valid reports whether f is one of the four terrain kinds.
func (f Field) Valid() bool {
	return f >= Background && f <= Target
}

// Walkable reports whether the player or a treasure may occupy f.
func (f Field) Walkable() bool {
	return f == Floor || f == Target
}

func (f Field) String() string {
	switch f {
	case Background:
		return "BACKGROUND"
	case Wall:
		return "WALL"
	case Floor:
		return "FLOOR"
	case Target:
		return "TARGET"
	default:
		return "NONE"
	}
}

// Char is the character used for f when rendering a board.
func (f Field) Char() byte {
	switch f {
	case Target:
		return '.'
	case Wall:
		return '#'
	default:
		return ' '
	}
}

const (
	PlayerChar   = '@'
	TreasureChar = '$'
)
