package mdp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gomdp/mdp"
)

func testSamplers(seed uint64) (*mdp.Sampler[int], *mdp.Sampler[colour]) {
	states := mdp.NewSampler([]int{0, 1, 2, 3, 4}, seed)
	actions := mdp.SamplerOf[colour](seed + 1)
	return states, actions
}

func TestNewPolicyIsTotal(t *testing.T) {
	states, actions := testSamplers(1)
	policy := mdp.NewPolicy(states, actions)

	require.Equal(t, states.Len(), policy.Len())
	for _, state := range states.Items() {
		action, err := policy.Get(state)
		require.NoError(t, err)
		require.NotEqual(t, -1, actions.Index(action))
	}
}

func TestPolicyUnknownState(t *testing.T) {
	states, actions := testSamplers(1)
	policy := mdp.NewPolicy(states, actions)

	_, err := policy.Get(17)
	require.Error(t, err)
	require.True(t, errors.Is(err, mdp.StateInPolicy))

	err = policy.Insert(17, red)
	require.ErrorIs(t, err, mdp.StateInPolicy)
	require.Equal(t, states.Len(), policy.Len())
}

func TestPolicyInsertAndEqual(t *testing.T) {
	states, actions := testSamplers(2)
	a := mdp.NewPolicy(states, actions)
	b := mdp.NewPolicy(states, actions)

	for _, state := range states.Items() {
		require.NoError(t, a.Insert(state, blue))
		require.NoError(t, b.Insert(state, blue))
	}
	require.True(t, a.Equal(b))

	// Re-inserting the same pair is idempotent
	require.NoError(t, a.Insert(3, blue))
	require.True(t, a.Equal(b))

	require.NoError(t, a.Insert(3, green))
	require.False(t, a.Equal(b))

	action, err := a.Get(3)
	require.NoError(t, err)
	require.Equal(t, green, action)
}

func TestPolicyCloneIsIndependent(t *testing.T) {
	states, actions := testSamplers(3)
	policy := mdp.NewPolicy(states, actions)
	clone := policy.Clone()
	require.True(t, policy.Equal(clone))

	before, err := policy.Get(0)
	require.NoError(t, err)
	other := red
	if before == red {
		other = green
	}
	require.NoError(t, clone.Insert(0, other))

	after, err := policy.Get(0)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestNewConstantPolicy(t *testing.T) {
	states, _ := testSamplers(3)
	policy := mdp.NewConstantPolicy(states, green)

	require.Equal(t, states.Len(), policy.Len())
	for _, state := range states.Items() {
		action, err := policy.Get(state)
		require.NoError(t, err)
		require.Equal(t, green, action)
	}
}
