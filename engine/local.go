package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
)

// MaxTurns is a safety cap on half-moves per game, above the rules' own draw
// limit so it only triggers on a misbehaving agent.
const MaxTurns = 500

// Engine drives a local game between two agents: red first, then black. It
// owns the live GameState; agents only ever receive it to read, and every
// returned move is validated against a freshly fetched legal-move list before
// it is applied.
type Engine struct {
	State *game.GameState
	red   agent.Agent
	black agent.Agent
}

func LocalEngine(red, black agent.Agent) *Engine {
	return &Engine{
		State: game.NewGameState(),
		red:   red,
		black: black,
	}
}

// Run executes the game loop until the game ends or MaxTurns is exceeded.
// It returns the winner (0 on a draw or cap) and the per-move metrics.
func (e *Engine) Run() (int8, []metrics.MoveMetric, error) {
	log.Info().Msg("game started, red to move")

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	for !e.State.Done && turnCount <= MaxTurns {
		current := e.turnAgent()

		move, metric, err := current.FindMove(e.State)
		if err != nil {
			return 0, moveMetrics, fmt.Errorf("agent failed to find a move on turn %d: %w", turnCount, err)
		}

		if err := e.Play(move); err != nil {
			return 0, moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       -e.State.Turn, // The side that just moved
			SearchMetric: metric,
		})
		turnCount++
	}

	if e.State.Done {
		log.Info().Msgf("game over after %d half-moves, winner %d", turnCount-1, e.State.Winner)
	} else {
		log.Warn().Msgf("game stopped after %d half-moves with no result", MaxTurns)
	}
	return e.State.Winner, moveMetrics, nil
}

// Play validates and applies a single move. Legal moves are re-fetched here:
// a move list from before any prior apply is stale and never consulted.
func (e *Engine) Play(move game.Move) error {
	legal := e.State.LegalMoves()
	if len(legal) == 0 {
		return fmt.Errorf("illegal move: no legal moves available")
	}

	if _, _, _, err := e.State.ApplyMove(move); err != nil {
		return fmt.Errorf("apply move %v: %w", move, err)
	}
	return nil
}

func (e *Engine) turnAgent() agent.Agent {
	if e.State.Turn == game.Red {
		return e.red
	}
	return e.black
}
