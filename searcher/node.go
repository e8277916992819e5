package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"checkers/game"
)

// node is one position in the search tree: the game snapshot after the move
// that created it, cumulative reward and visit statistics, and the legal
// moves not yet expanded into children. The parent pointer is non-owning and
// read only for its visit count; the tree is a strict arborescence discarded
// after the search returns.
type node struct {
	game     *game.GameState
	move     game.Move
	parent   *node
	children []*node
	rewards  float64
	visits   int
	untried  []game.Move
}

func newNode(g *game.GameState, move game.Move, parent *node) *node {
	n := &node{game: g, move: move, parent: parent}
	if !g.Done {
		n.untried = g.LegalMoves()
	}
	return n
}

func (n *node) terminal() bool {
	return n.game.Done
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// score is the UCT value with the exploration numerator c^2*ln(parent visits)
// precomputed by the caller. Unvisited children rank first.
func (n *node) score(c2LnN float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.rewards/float64(n.visits) + math.Sqrt(c2LnN/float64(n.visits))
}

// bestChild returns the child maximizing the UCT score, first seen winning
// ties.
func (n *node) bestChild(cSquared float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	normalizer := cSquared * math.Log(float64(n.visits))

	best := n.children[0]
	bestScore := best.score(normalizer)
	for _, child := range n.children[1:] {
		if s := child.score(normalizer); s > bestScore {
			bestScore = s
			best = child
		}
	}
	return best
}

// expand pops a uniformly random untried move, applies it to a clone of this
// node's game, and attaches the result as a new child.
func (n *node) expand(rng *rand.Rand) *node {
	i := rng.Intn(len(n.untried))
	move := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)

	childGame := n.game.Clone()
	if _, _, _, err := childGame.ApplyMove(move); err != nil {
		panic("expanding an untried move failed: " + err.Error())
	}
	child := newNode(childGame, move, n)
	n.children = append(n.children, child)
	return child
}

// bestMove returns the move of the most visited child, first seen winning
// ties. Visit count is preferred over average reward because it is robust to
// the variance of random rollouts.
func (n *node) bestMove() game.Move {
	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best.move
}
