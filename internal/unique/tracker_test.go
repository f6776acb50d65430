package unique

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_CountsDistinctHashes(t *testing.T) {
	tr := NewTracker(8)

	tr.Observe(1)
	tr.Observe(2)
	tr.Observe(1)
	tr.Observe(3)

	require.Equal(t, 3, tr.Count())
	require.False(t, tr.Saturated())
}

func TestTracker_SaturatesAtCap(t *testing.T) {
	tr := NewTracker(2)

	tr.Observe(1)
	tr.Observe(2)
	require.Equal(t, 2, tr.Count())
	require.False(t, tr.Saturated())

	// A repeat of a tracked hash does not saturate.
	tr.Observe(2)
	require.False(t, tr.Saturated())

	// The first novel hash past the cap saturates and is dropped.
	tr.Observe(3)
	require.True(t, tr.Saturated())
	require.Equal(t, 2, tr.Count())

	// Once saturated, everything is a no-op.
	tr.Observe(4)
	require.Equal(t, 2, tr.Count())
}
