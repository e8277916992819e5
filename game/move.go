package game

import "fmt"

// Move is the path one piece travels during a turn plus the coordinates of the
// opposing pieces it captures, one per jump in jump order. A simple step has a
// two-cell path and no captures.
type Move struct {
	Path     []Coord
	Captures []Coord
}

// Origin is the cell the moving piece starts from.
func (m Move) Origin() Coord {
	return m.Path[0]
}

// Destination is the cell the moving piece ends on.
func (m Move) Destination() Coord {
	return m.Path[len(m.Path)-1]
}

// IsCapture reports whether the move removes at least one opposing piece.
func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Equal reports whether both the path and the captures sequences match.
func (m Move) Equal(other Move) bool {
	if len(m.Path) != len(other.Path) || len(m.Captures) != len(other.Captures) {
		return false
	}
	for i, c := range m.Path {
		if c != other.Path[i] {
			return false
		}
	}
	for i, c := range m.Captures {
		if c != other.Captures[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	return fmt.Sprintf("Move(%v, captures=%v)", m.Path, m.Captures)
}

// EncodeMove packs a move's endpoints into a stable base-10 key:
// originRow*1000 + originCol*100 + destRow*10 + destCol. Multi-jump moves
// sharing endpoints with a different chain collide, which callers accept.
func EncodeMove(m Move) int {
	origin := m.Origin()
	dest := m.Destination()
	return origin.Row*BoardSize*BoardSize*BoardSize +
		origin.Col*BoardSize*BoardSize +
		dest.Row*BoardSize +
		dest.Col
}
