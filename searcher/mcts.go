package searcher

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"checkers/experiments/metrics"
	"checkers/game"
)

// Hyperparameters for MCTS

// CSquared is the squared UCT exploration constant (c ~ 1.414).
const CSquared = 2.0

// MaxCutoff caps rollout length in half-moves.
const MaxCutoff = 80

// DefaultIterations is the search budget when neither an iteration count nor
// a duration is configured.
const DefaultIterations = 800

// ErrNoLegalMoves is returned when a search starts from a position with
// nothing to play, such as an already finished game.
var ErrNoLegalMoves = errors.New("no legal moves to search")

type Option func(m *MCTS)

// MCTS runs sequential Monte Carlo tree search over checkers positions: UCT
// selection, single-child expansion, uniformly random rollouts, and
// backpropagation to the root. A duration budget takes precedence over the
// iteration budget; the deadline is checked once per outer iteration.
type MCTS struct {
	iterations int
	duration   time.Duration
	cSquared   float64
	cutoff     int
	rng        *rand.Rand
	metrics    metrics.Collector
	metric     metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT exploration constant c.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.cSquared = c * c
		}
	}
}

// WithCutoff caps rollout depth in half-moves.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSeed makes expansion and rollouts reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations: DefaultIterations,
		cSquared:   CSquared,
		cutoff:     MaxCutoff,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search clones the given game into a fresh root and runs
// select-expand-rollout-backpropagate cycles until the budget is exhausted,
// then returns the move whose child received the most visits. The caller's
// game is never touched.
func (m *MCTS) Search(g *game.GameState) (game.Move, error) {
	root := newNode(g.Clone(), game.Move{}, nil)
	if root.terminal() || len(root.untried) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}

	m.metrics.Start(m.cutoff, m.cSquared)

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	for iters := 0; ; iters++ {
		if !deadline.IsZero() {
			if !time.Now().Before(deadline) {
				break
			}
		} else if iters >= m.iterations {
			break
		}
		m.simulate(root)
	}

	// An already expired deadline must still produce a legal move.
	if len(root.children) == 0 {
		m.simulate(root)
	}

	m.metric = m.metrics.Complete()
	return root.bestMove(), nil
}

// Metric reports statistics for the most recent Search call.
func (m *MCTS) Metric() metrics.SearchMetric {
	return m.metric
}

func (m *MCTS) simulate(root *node) {
	node := selectNode(root, m.cSquared)
	if !node.terminal() {
		node = node.expand(m.rng)
	}
	reward := rollout(node.game, m.cutoff, m.rng, m.metrics)
	backup(node, reward)
	m.metrics.AddIteration()
}

// selectNode descends from the root while nodes are non-terminal, stopping at
// the first node with untried moves, otherwise following the best UCT child.
func selectNode(root *node, cSquared float64) *node {
	node := root
	for !node.terminal() {
		if !node.fullyExpanded() {
			return node
		}
		node = node.bestChild(cSquared)
	}
	return node
}

// rollout plays uniformly random legal moves on a clone until the game ends
// or the depth cutoff is hit. The reward is always the result from Black's
// perspective: every node's statistics read as "probability Black wins from
// here" regardless of whose turn it is, which is what backup relies on.
func rollout(g *game.GameState, cutoff int, rng *rand.Rand, collector metrics.Collector) float64 {
	sim := g.Clone()
	for depth := 0; !sim.Done && depth < cutoff; depth++ {
		moves := sim.LegalMoves()
		if len(moves) == 0 {
			break
		}
		if _, _, _, err := sim.ApplyMove(moves[rng.Intn(len(moves))]); err != nil {
			panic("rollout move failed: " + err.Error())
		}
	}
	if sim.Done {
		collector.AddFullPlayout()
	}
	return sim.Result(game.Black)
}

// backup adds one visit and the rollout reward to the node and every ancestor
// up to the root.
func backup(n *node, reward float64) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		node.rewards += reward
	}
}
