package game

import "errors"

var (
	// ErrGameOver is returned when a move is applied to a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalMove is returned when a move is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")
)

// DrawMoveLimit is the number of consecutive half-moves without a capture
// after which the game is drawn.
const DrawMoveLimit = 80

// GameState composes the board, the side to move, and the outcome of a game
// of international 10x10 checkers. Mutate only through ApplyMove; once Done is
// set the state is final. Winner is meaningful only while Done is true: Red or
// Black for a win, 0 for a draw.
type GameState struct {
	Board      Board
	Turn       int8
	Winner     int8
	Done       bool
	NoCaptures int
}

// NewGameState returns a fresh game in the standard starting position with
// red to move.
func NewGameState() *GameState {
	return &GameState{
		Board: NewBoard(),
		Turn:  Red,
	}
}

// Reset reinitializes to the starting position and returns the observation.
func (g *GameState) Reset() Observation {
	*g = *NewGameState()
	return g.Observation()
}

// LegalMoves returns the legal moves for the side to move. Captures are
// mandatory; the list is never valid across an ApplyMove boundary.
func (g *GameState) LegalMoves() []Move {
	return MovesOn(&g.Board, g.Turn)
}

// ApplyMove commits a move: removes its captures, relocates the piece,
// promotes on the far rank, updates the no-capture counter, checks for
// termination, and flips the turn. It returns the new observation, the
// mover's reward (1.0 on a win ending the game, else 0.0), and the done flag.
// Applying a move to a finished game returns ErrGameOver; a move outside the
// current legal set returns ErrIllegalMove.
func (g *GameState) ApplyMove(m Move) (Observation, float64, bool, error) {
	if g.Done {
		return Observation{}, 0, true, ErrGameOver
	}
	if !moveIsLegal(g.LegalMoves(), m) {
		return Observation{}, 0, false, ErrIllegalMove
	}

	for _, captured := range m.Captures {
		g.Board[captured.Row][captured.Col] = Empty
	}

	origin, dest := m.Origin(), m.Destination()
	piece := g.Board[origin.Row][origin.Col]
	g.Board[origin.Row][origin.Col] = Empty
	if piece == Red && dest.Row == 0 {
		piece = RedKing
	}
	if piece == Black && dest.Row == BoardSize-1 {
		piece = BlackKing
	}
	g.Board[dest.Row][dest.Col] = piece

	if m.IsCapture() {
		g.NoCaptures = 0
	} else {
		g.NoCaptures++
	}

	reward := g.checkTerminal()
	g.Turn = -g.Turn
	return g.Observation(), reward, g.Done, nil
}

// checkTerminal runs before the turn flips, so g.Turn is still the mover. The
// game ends when the opponent has no pieces or no legal replies (mover wins,
// reward 1.0) or when the no-capture counter reaches the draw limit (winner
// 0, reward 0.0).
func (g *GameState) checkTerminal() float64 {
	opponent := -g.Turn
	if g.Board.pieceCount(opponent) == 0 || len(MovesOn(&g.Board, opponent)) == 0 {
		g.Done = true
		g.Winner = g.Turn
		return 1.0
	}
	if g.NoCaptures >= DrawMoveLimit {
		g.Done = true
		g.Winner = 0
	}
	return 0.0
}

// Clone returns a fully independent copy sharing no mutable state with the
// original.
func (g *GameState) Clone() *GameState {
	clone := *g
	return &clone
}

// Result scores the finished game from a side's perspective: +1.0 if that
// side won, -1.0 if it lost, 0.0 while undecided or drawn.
func (g *GameState) Result(perspective int8) float64 {
	if !g.Done || g.Winner == 0 {
		return 0.0
	}
	if g.Winner == perspective {
		return 1.0
	}
	return -1.0
}

func (g *GameState) String() string {
	return g.Board.String()
}

func moveIsLegal(legal []Move, m Move) bool {
	for _, lm := range legal {
		if lm.Equal(m) {
			return true
		}
	}
	return false
}
