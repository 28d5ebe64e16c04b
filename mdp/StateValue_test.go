package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gomdp/mdp"
)

func TestStateValue(t *testing.T) {
	states, _ := testSamplers(1)
	v := mdp.NewStateValue(states)

	require.Equal(t, states.Len(), v.Len())
	for _, state := range states.Items() {
		value, err := v.Get(state)
		require.NoError(t, err)
		require.Zero(t, value)
	}

	require.NoError(t, v.Insert(2, -3.5))
	value, err := v.Get(2)
	require.NoError(t, err)
	require.Equal(t, -3.5, value)
	require.Equal(t, []float64{0, 0, -3.5, 0, 0}, v.Values())

	_, err = v.Get(-1)
	require.ErrorIs(t, err, mdp.StateInStateValue)
	require.ErrorIs(t, v.Insert(-1, 1), mdp.StateInStateValue)

	clone := v.Clone()
	require.NoError(t, clone.Insert(2, 8))
	value, _ = v.Get(2)
	require.Equal(t, -3.5, value)
}
