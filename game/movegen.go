package game

// Move generation. Captures are mandatory: when any piece of the moving side
// has a capture available, only capture moves are returned. Chains are
// discovered recursively with copy-on-branch boards, so sibling branches never
// observe each other's tentative jumps. The longest-chain rule of some
// variants is not enforced: every maximal chain per piece is a candidate.

// MovesOn returns the legal moves for side on an explicit board, independent
// of any GameState. The list holds only captures when at least one capture
// exists, otherwise only simple diagonal steps.
func MovesOn(b *Board, side int8) []Move {
	var captures, steps []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b[row][col]
			if piece == Empty || sign(piece) != sign(side) {
				continue
			}
			for _, m := range pieceMoves(b, row, col) {
				if m.IsCapture() {
					captures = append(captures, m)
				} else {
					steps = append(steps, m)
				}
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return steps
}

// pieceMoves returns the capture chains for the piece at (row, col), or its
// simple steps when it has no capture.
func pieceMoves(b *Board, row, col int) []Move {
	piece := b[row][col]
	if chains := captureChains(b, row, col, piece, nil); len(chains) > 0 {
		return chains
	}

	var moves []Move
	for _, d := range directions(piece) {
		nr, nc := row+d.Row, col+d.Col
		if inBounds(nr, nc) && b[nr][nc] == Empty {
			moves = append(moves, Move{Path: []Coord{{row, col}, {nr, nc}}})
		}
	}
	return moves
}

// captureChains returns every maximal capture chain for piece starting at
// (row, col). A jump is legal when the adjacent diagonal holds an opposing
// piece not yet captured in this chain and the cell beyond is in bounds and
// empty. Captured cells stay on the board until the whole move commits, so
// the visited list is what distinguishes "scheduled for removal" from
// "empty". Landing on the back rank promotes immediately and the chain
// continues with king directions.
func captureChains(b *Board, row, col int, piece int8, visited []Coord) []Move {
	var moves []Move
	for _, d := range directions(piece) {
		midRow, midCol := row+d.Row, col+d.Col
		endRow, endCol := row+2*d.Row, col+2*d.Col
		if !inBounds(endRow, endCol) {
			continue
		}
		mid := b[midRow][midCol]
		if mid == Empty || sign(mid) == sign(piece) {
			continue
		}
		if b[endRow][endCol] != Empty {
			continue
		}
		captured := Coord{midRow, midCol}
		if containsCoord(visited, captured) {
			continue
		}

		// Branch on a private copy so sibling chains stay independent.
		next := *b
		next[endRow][endCol] = piece
		next[row][col] = Empty
		next[midRow][midCol] = Empty
		promoted := piece
		if piece == Red && endRow == 0 {
			promoted = RedKing
			next[endRow][endCol] = RedKing
		} else if piece == Black && endRow == BoardSize-1 {
			promoted = BlackKing
			next[endRow][endCol] = BlackKing
		}

		further := captureChains(&next, endRow, endCol, promoted, appendCoord(visited, captured))
		if len(further) > 0 {
			for _, cont := range further {
				moves = append(moves, Move{
					Path:     append([]Coord{{row, col}}, cont.Path...),
					Captures: append([]Coord{captured}, cont.Captures...),
				})
			}
		} else {
			moves = append(moves, Move{
				Path:     []Coord{{row, col}, {endRow, endCol}},
				Captures: []Coord{captured},
			})
		}
	}
	return moves
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, v := range coords {
		if v == c {
			return true
		}
	}
	return false
}

// appendCoord extends the visited list into fresh backing storage so sibling
// branches cannot alias each other's entries.
func appendCoord(coords []Coord, c Coord) []Coord {
	next := make([]Coord, len(coords)+1)
	copy(next, coords)
	next[len(coords)] = c
	return next
}
