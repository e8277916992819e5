package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts iterations and full playouts", func(t *testing.T) {
		c := NewCollector()
		c.Start(80, 2.0)
		for i := 0; i < 5; i++ {
			c.AddIteration()
		}
		c.AddFullPlayout()

		metric := c.Complete()

		require.Equal(t, 5, metric.Iterations, "every iteration should be counted")
		require.Equal(t, 1, metric.FullPlayouts, "full playouts should be counted")
		require.Equal(t, 80, metric.Cutoff, "the cutoff should round-trip")
		require.Equal(t, 2.0, metric.Exploration, "the exploration constant should round-trip")
		require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0), "elapsed time should be recorded")
	})

	t.Run("start resets previous counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(80, 2.0)
		c.AddIteration()
		c.Start(80, 2.0)

		require.Equal(t, 0, c.Complete().Iterations, "a new search should start from zero")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(80, 2.0)
		c.AddIteration()

		require.Equal(t, SearchMetric{}, c.Complete(), "the dummy should stay empty")
	})
}
