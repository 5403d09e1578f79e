package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolClaimReleaseAndExhaustion(t *testing.T) {
	p := NewPool(2)
	require.Equal(t, 2, p.Size())
	require.Equal(t, 0, p.ActiveCount())

	a := p.claim()
	require.NotNil(t, a)
	b := p.claim()
	require.NotNil(t, b)
	require.Equal(t, 2, p.ActiveCount())

	require.Nil(t, p.claim(), "pool should be exhausted")

	p.release(a)
	require.Equal(t, 1, p.ActiveCount())

	c := p.claim()
	require.NotNil(t, c, "released slot should be reusable")
}

func TestPoolClaimZeroesSlotState(t *testing.T) {
	p := NewPool(1)
	ctx := p.claim()
	require.Equal(t, InvalidState, ctx.currentState)
	require.Equal(t, InvalidState, ctx.previousStepState)
	require.True(t, ctx.active)
}
