package game

// Observation is a 4-plane indicator tensor over the grid: plane 0 red men,
// plane 1 black men, plane 2 red kings, plane 3 black kings.
type Observation [4][BoardSize][BoardSize]float32

func observe(b *Board) Observation {
	var obs Observation
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Red:
				obs[0][row][col] = 1.0
			case Black:
				obs[1][row][col] = 1.0
			case RedKing:
				obs[2][row][col] = 1.0
			case BlackKing:
				obs[3][row][col] = 1.0
			}
		}
	}
	return obs
}

// Observation encodes the current board as indicator planes.
func (g *GameState) Observation() Observation {
	return observe(&g.Board)
}

// CanonicalObservation encodes the board from the mover's perspective: with
// red to move it equals Observation; with black to move the rows are reversed
// and every piece sign negated first, so the side to move always appears as
// red. Intended for learned-policy consumers, not used by the search itself.
func (g *GameState) CanonicalObservation() Observation {
	if g.Turn == Red {
		return g.Observation()
	}
	var flipped Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			flipped[row][col] = -g.Board[BoardSize-1-row][col]
		}
	}
	return observe(&flipped)
}
