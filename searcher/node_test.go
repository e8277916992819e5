package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"checkers/game"
)

func TestNodeScore(t *testing.T) {
	t.Run("unvisited node ranks first", func(t *testing.T) {
		n := &node{}

		require.True(t, math.IsInf(n.score(1.0), 1), "an unvisited node should score +Inf")
	})

	t.Run("score balances exploitation and exploration", func(t *testing.T) {
		n := &node{rewards: 3, visits: 4}
		normalizer := CSquared * math.Log(10)

		want := 3.0/4.0 + math.Sqrt(normalizer/4.0)
		require.InDelta(t, want, n.score(normalizer), 1e-12,
			"score should be q/n + sqrt(c^2*lnN/n)")
	})
}

func TestBestChild(t *testing.T) {
	t.Run("picks the max UCT child", func(t *testing.T) {
		strong := &node{rewards: 9, visits: 10}
		weak := &node{rewards: 1, visits: 10}
		parent := &node{visits: 20, children: []*node{weak, strong}}

		require.Same(t, strong, parent.bestChild(CSquared),
			"the higher win-rate child should be selected at equal visits")
	})

	t.Run("first seen wins ties", func(t *testing.T) {
		first := &node{rewards: 5, visits: 10}
		second := &node{rewards: 5, visits: 10}
		parent := &node{visits: 20, children: []*node{first, second}}

		require.Same(t, first, parent.bestChild(CSquared),
			"ties should break by child iteration order")
	})

	t.Run("unvisited child preempts visited ones", func(t *testing.T) {
		visited := &node{rewards: 10, visits: 10}
		fresh := &node{}
		parent := &node{visits: 10, children: []*node{visited, fresh}}

		require.Same(t, fresh, parent.bestChild(CSquared),
			"an unvisited child should be explored before any visited one")
	})
}

func TestExpand(t *testing.T) {
	t.Run("pops one untried move into a new child", func(t *testing.T) {
		g := game.NewGameState()
		root := newNode(g, game.Move{}, nil)
		before := len(root.untried)
		rng := rand.New(rand.NewSource(1))

		child := root.expand(rng)

		require.Len(t, root.untried, before-1, "expansion should consume one untried move")
		require.Len(t, root.children, 1, "expansion should attach one child")
		require.Same(t, root, child.parent, "the child should point back at its parent")
		require.Equal(t, game.Black, child.game.Turn, "the child position should be after red's move")
		require.NotSame(t, root.game, child.game, "the child should own an independent clone")
		require.Equal(t, game.NewBoard(), root.game.Board,
			"expanding should never mutate the parent's game")
	})

	t.Run("terminal child has no untried moves", func(t *testing.T) {
		g := game.NewGameState()
		g.Board = game.Board{}
		g.Board[4][1] = game.Red
		g.Board[3][2] = game.Black
		root := newNode(g, game.Move{}, nil)
		rng := rand.New(rand.NewSource(1))

		child := root.expand(rng)

		require.True(t, child.terminal(), "capturing the last black piece ends the game")
		require.Empty(t, child.untried, "a terminal node should have nothing to expand")
	})
}

func TestBackup(t *testing.T) {
	t.Run("adds reward and visit up to the root", func(t *testing.T) {
		root := &node{}
		mid := &node{parent: root}
		leaf := &node{parent: mid}

		backup(leaf, 1.0)
		backup(leaf, -1.0)

		for _, n := range []*node{leaf, mid, root} {
			require.Equal(t, 2, n.visits, "every ancestor should gain one visit per backup")
			require.Equal(t, 0.0, n.rewards, "rewards should accumulate along the path")
		}
	})
}

func TestBestMove(t *testing.T) {
	t.Run("most visited child wins regardless of reward", func(t *testing.T) {
		lucky := &node{move: game.Move{Path: []game.Coord{{Row: 6, Col: 1}, {Row: 5, Col: 0}}}, rewards: 5, visits: 5}
		solid := &node{move: game.Move{Path: []game.Coord{{Row: 6, Col: 3}, {Row: 5, Col: 2}}}, rewards: 10, visits: 30}
		root := &node{children: []*node{lucky, solid}}

		require.True(t, solid.move.Equal(root.bestMove()),
			"final selection should follow visit counts, not average reward")
	})
}
