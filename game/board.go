package game

import "strings"

// Cell values stored on the board. Men are signed units, kings are signed twos,
// so sign(cell) identifies the owner and abs(cell) the rank.
const (
	Empty     int8 = 0
	Red       int8 = 1
	Black     int8 = -1
	RedKing   int8 = 2
	BlackKing int8 = -2
)

// BoardSize is the edge length of the grid.
const BoardSize = 10

// Board is a fixed 10x10 grid with value-copy semantics. Only cells where
// (row+col) is odd are ever occupied.
type Board [BoardSize][BoardSize]int8

// Coord addresses a single board cell.
type Coord struct {
	Row, Col int
}

// NewBoard returns the standard starting layout: black occupies the dark cells
// of the top four rows and red the bottom four, with the second row from each
// edge pre-promoted to kings.
func NewBoard() Board {
	var b Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 != 1 {
				continue
			}
			if row < (BoardSize-1)/2 {
				if row == 1 {
					b[row][col] = BlackKing
				} else {
					b[row][col] = Black
				}
			} else if row > (BoardSize+1)/2 {
				if row == BoardSize-2 {
					b[row][col] = RedKing
				} else {
					b[row][col] = Red
				}
			}
		}
	}
	return b
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func sign(piece int8) int8 {
	switch {
	case piece > 0:
		return 1
	case piece < 0:
		return -1
	}
	return 0
}

// directions returns the diagonal step offsets a piece may take: men only
// toward the opponent's edge, kings all four ways.
func directions(piece int8) []Coord {
	switch piece {
	case Red:
		return []Coord{{-1, -1}, {-1, 1}}
	case Black:
		return []Coord{{1, -1}, {1, 1}}
	}
	return []Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
}

// pieceCount returns the number of pieces of either rank owned by side.
func (b *Board) pieceCount(side int8) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty && sign(b[row][col]) == sign(side) {
				count++
			}
		}
	}
	return count
}

func (b Board) String() string {
	symbols := map[int8]string{Red: "r", Black: "b", RedKing: "R", BlackKing: "B", Empty: "."}
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		cells := make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			cells[col] = symbols[b[row][col]]
		}
		sb.WriteString(strings.Join(cells, " "))
		if row < BoardSize-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
