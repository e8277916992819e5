package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/searcher"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 50 * time.Millisecond
)

var iterationConfigs = []metrics.AgentConfig{
	{ID: 1, Iterations: 50},
	{ID: 2, Iterations: 100},
	{ID: 3, Iterations: 200},
	{ID: 4, Iterations: 400},
	{ID: 5, Iterations: 800},
}

// RunIterationsToStrength pairs each iteration budget against the smallest
// budget as a fixed baseline.
func RunIterationsToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 50}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range iterationConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("iterations_to_strength", append(iterationConfigs, baseline), matchUps)
}

// RunTimeBudgetExperiment compares wall-clock-bounded agents against an
// iteration-bounded baseline of comparable strength.
func RunTimeBudgetExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 200}
	timeConfigs := []metrics.AgentConfig{
		{ID: 1, Duration: TimeBudget},
		{ID: 2, Duration: 2 * TimeBudget},
		{ID: 3, Duration: 4 * TimeBudget},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range timeConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("time_budget", append(timeConfigs, baseline), matchUps)
}

// RunCutoffExperiment compares rollout depth cutoffs at a fixed iteration
// budget.
func RunCutoffExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Iterations: 200}
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Iterations: baseline.Iterations, Cutoff: 20},
		{ID: 2, Iterations: baseline.Iterations, Cutoff: 40},
		{ID: 3, Iterations: baseline.Iterations, Cutoff: 80},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range cutoffConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("cutoff", append(cutoffConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for _, matchUp := range matchUps {
		log.Info().Msgf("running matchup %d vs %d", matchUp[0].ID, matchUp[1].ID)
		for i := 0; i < NumGames; i++ {
			count++
			record, moves := runGame(count, matchUp[0], matchUp[1])
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	writeRecords(name, configs, gameRecords, moveRecords)
}

func runGame(id int, config1, config2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	red := agent.NewMCTSAgent(createMCTS(config1))
	black := agent.NewMCTSAgent(createMCTS(config2))
	e := engine.LocalEngine(red, black)

	start := time.Now()
	winner, moveMetrics, err := e.Run()
	if err != nil {
		log.Error().Err(err).Msgf("game %d aborted", id)
	}
	end := time.Now()

	record := metrics.GameRecord{
		ID:     id,
		Agent1: config1.ID,
		Agent2: config2.ID,
		GameMetric: metrics.GameMetric{
			Winner:     winner,
			Draw:       e.State.Done && winner == 0,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moveMetrics),
		},
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, metric := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: metric}
	}
	return record, moves
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	return searcher.NewMCTS(options...)
}

func writeRecords(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create metrics writer")
		return
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Error().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Error().Err(err).Msg("failed to write move records")
	}
}
