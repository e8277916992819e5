package agent

import (
	"golang.org/x/exp/rand"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

// Agent picks a move for the side to move in the given state.
type Agent interface {
	// FindMove returns a legal move and performance metrics (if collected)
	// from the decision process.
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
}

// MCTSAgent decides by Monte Carlo tree search.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(mcts *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{mcts: mcts}
}

func (a *MCTSAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	move, err := a.mcts.Search(state)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return move, a.mcts.Metric(), nil
}

// RandomAgent picks a legal move uniformly at random. Useful as a baseline
// opponent and for exercising full games in tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
