package queue

import (
	"testing"

	"github.com/larshei/lfsm"
	"github.com/stretchr/testify/require"
)

func TestRingFIFO(t *testing.T) {
	r := NewRing(4)
	require.True(t, r.IsEmpty())

	require.NoError(t, r.Add(fsm.Event(1)))
	require.NoError(t, r.Add(fsm.Event(2)))
	require.NoError(t, r.Add(fsm.Event(3)))
	require.NoError(t, r.Add(fsm.Event(4)))
	require.True(t, r.IsFull())

	require.ErrorIs(t, r.Add(fsm.Event(5)), ErrFull)

	for _, want := range []fsm.Event{1, 2, 3, 4} {
		got, err := r.Read()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.True(t, r.IsEmpty())
	_, err := r.Read()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestRingWrapAround(t *testing.T) {
	r := NewRing(2)
	require.NoError(t, r.Add(fsm.Event(1)))
	require.NoError(t, r.Add(fsm.Event(2)))

	v, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, fsm.Event(1), v)

	require.NoError(t, r.Add(fsm.Event(3)))

	v, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, fsm.Event(2), v)

	v, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, fsm.Event(3), v)
}

func TestRingPeek(t *testing.T) {
	r := NewRing(4)
	require.NoError(t, r.Add(fsm.Event(7)))
	require.NoError(t, r.Add(fsm.Event(8)))

	v, ok := r.Peek(1)
	require.True(t, ok)
	require.Equal(t, fsm.Event(8), v)

	_, ok = r.Peek(5)
	require.False(t, ok)
}

func TestRingNonPowerOfTwoCapacityRoundsUp(t *testing.T) {
	r := NewRing(5)
	require.Equal(t, 8, r.Cap())
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Add(fsm.Event(i)))
	}
	require.True(t, r.IsFull())
}
