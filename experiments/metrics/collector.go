package metrics

import "time"

// SearchMetric summarizes one search: how many select-expand-rollout cycles
// ran, how many rollouts reached a real terminal state before the depth
// cutoff, and the configuration that produced them.
type SearchMetric struct {
	Iterations   int
	FullPlayouts int
	Duration     time.Duration
	Cutoff       int
	Exploration  float64
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player int8
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Winner     int8
	Draw       bool
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers statistics during a single search. The search loop is
// strictly sequential, so plain counters suffice.
type Collector interface {
	Start(cutoff int, exploration float64)
	AddIteration()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	cutoff       int
	exploration  float64
	startTime    time.Time
	iterations   int
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(cutoff int, exploration float64) {
	c.startTime = time.Now()
	c.cutoff = cutoff
	c.exploration = exploration
	c.iterations = 0
	c.fullPlayouts = 0
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:   c.iterations,
		FullPlayouts: c.fullPlayouts,
		Duration:     time.Since(c.startTime),
		Cutoff:       c.cutoff,
		Exploration:  c.exploration,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(cutoff int, exploration float64) {}
func (dummyCollector) AddIteration()                         {}
func (dummyCollector) AddFullPlayout()                       {}
func (dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
