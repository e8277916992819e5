package main

import (
	"fmt"
	"time"

	"checkers/agent"
	"checkers/engine"
	"checkers/searcher"
)

type config struct {
	iterations int
	duration   time.Duration
	cutoff     int
	seed       uint64
}

func main() {
	runBudgetComparison()
}

func runBudgetComparison() {
	numGames := 5
	configs := [][2]config{
		{{iterations: 100, seed: 1}, {iterations: 400, seed: 2}},
		{{iterations: 400, seed: 1}, {duration: 200 * time.Millisecond, seed: 2}},
	}

	fmt.Printf("Running budget comparison...\n")
	for _, pair := range configs {
		fmt.Printf("Agent %+v vs Agent %+v:\n", pair[0], pair[1])
		for i := 0; i < numGames; i++ {
			fmt.Printf("Game %d started...\n", i+1)
			winner := runGame(pair[0], pair[1])
			fmt.Printf("Game %d over! Winner: %s\n", i+1, winnerName(winner))
		}
	}
	fmt.Printf("Finished budget comparison.\n")
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 config) int8 {
	red := agent.NewMCTSAgent(createMCTS(config1))
	black := agent.NewMCTSAgent(createMCTS(config2))

	e := engine.LocalEngine(red, black)
	winner, _, err := e.Run()
	if err != nil {
		fmt.Printf("Game aborted: %v\n", err)
	}
	return winner
}

func createMCTS(cfg config) *searcher.MCTS {
	options := []searcher.Option{}

	if cfg.iterations > 0 {
		options = append(options, searcher.WithIterations(cfg.iterations))
	}
	if cfg.duration > 0 {
		options = append(options, searcher.WithDuration(cfg.duration))
	}
	if cfg.cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.cutoff))
	}
	if cfg.seed > 0 {
		options = append(options, searcher.WithSeed(cfg.seed))
	}

	return searcher.NewMCTS(options...)
}

func winnerName(winner int8) string {
	switch winner {
	case 1:
		return "Red"
	case -1:
		return "Black"
	}
	return "Draw"
}
