//go:build unit

package wordlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthsAfterEpoch(n int) time.Time {
	return time.Date(EpochYear, EpochMonth, 15, 12, 0, 0, 0, time.UTC).AddDate(0, n, 0)
}

func TestValidCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "epoch month itself", now: monthsAfterEpoch(0), want: 0},
		{name: "one month later", now: monthsAfterEpoch(1), want: 1},
		{name: "three months later", now: monthsAfterEpoch(3), want: 3},
		{name: "a year later", now: monthsAfterEpoch(12), want: 12},
		{name: "clock before epoch", now: monthsAfterEpoch(-6), want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := New(nil)

			assert.Equal(t, tt.want, w.ValidCount(tt.now))
		})
	}
}

func TestValidCount_Monotonic(t *testing.T) {
	t.Parallel()

	w := New(nil)

	prev := -1

	for n := -3; n <= 36; n++ {
		count := w.ValidCount(monthsAfterEpoch(n))
		require.GreaterOrEqual(t, count, prev, "valid count decreased at month offset %d", n)

		prev = count
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	w := New(nil)

	assert.Empty(t, w.Words(0))
	assert.Empty(t, w.Words(-1))

	first := w.Words(3)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, first)

	// Clamped to corpus length.
	all := w.Words(1 << 20)
	assert.NotEmpty(t, all)
	assert.LessOrEqual(t, len(all), 1<<20)
}

func TestWords_AppendOnlyGrowth(t *testing.T) {
	t.Parallel()

	w := New(nil)

	smaller := w.Words(5)
	larger := w.Words(8)

	require.Len(t, larger, 8)
	assert.Equal(t, smaller, larger[:5])
}

func TestContains(t *testing.T) {
	t.Parallel()

	w := New(nil)

	// "gamma" sits at corpus index 2: unlocked from the third month on.
	assert.False(t, w.Contains(monthsAfterEpoch(1), "gamma"))
	assert.False(t, w.Contains(monthsAfterEpoch(2), "gamma"))
	assert.True(t, w.Contains(monthsAfterEpoch(3), "gamma"))
	assert.True(t, w.Contains(monthsAfterEpoch(24), "gamma"))

	// Nothing is unlocked before the epoch.
	assert.False(t, w.Contains(monthsAfterEpoch(-1), "alpha"))

	// Unknown words never match.
	assert.False(t, w.Contains(monthsAfterEpoch(24), "not-a-corpus-word"))
}

func TestContains_MemoizedSetsStayConsistent(t *testing.T) {
	t.Parallel()

	w := New(nil)

	// Same count twice exercises the memoized set path.
	now := monthsAfterEpoch(5)

	require.True(t, w.Contains(now, "alpha"))
	require.True(t, w.Contains(now, "alpha"))
	assert.False(t, w.Contains(now, "zeta"))
}
