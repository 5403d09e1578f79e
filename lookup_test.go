package fsm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTransitionIndexPointsAtFirstRowOfEachBlock(t *testing.T) {
	transitions := []Transition{
		{Current: 1, Event: 1, Next: 2},
		{Current: 1, Event: 1, Next: 3}, // same key, ignored by the index
		{Current: 1, Event: 2, Next: 4},
		{Current: 2, Event: 1, Next: 1},
	}
	prepareTable(transitions)
	stateMin, stateMax, eventMin, eventMax := findExtrema(transitions)

	index, pos, err := buildTransitionIndex(transitions, stateMin, stateMax, eventMin, eventMax, DefaultMaxIndexCells)
	require.NoError(t, err)

	eventCount := int(eventMax-eventMin) + 1
	offset := func(s State, e Event) int { return int(s-stateMin)*eventCount + int(e-eventMin) }

	require.Same(t, &transitions[0], index[offset(1, 1)])
	require.Equal(t, 0, pos[offset(1, 1)])
	require.Same(t, &transitions[2], index[offset(1, 2)])
	require.Same(t, &transitions[3], index[offset(2, 1)])

	// (2,2) was never authored; the cell stays nil/-1.
	require.Nil(t, index[offset(2, 2)])
	require.Equal(t, -1, pos[offset(2, 2)])
}

func TestBuildTransitionIndexRefusesOversizedTables(t *testing.T) {
	transitions := []Transition{
		{Current: 0, Event: 0, Next: 1},
		{Current: 100, Event: 100, Next: 0},
	}
	prepareTable(transitions)
	stateMin, stateMax, eventMin, eventMax := findExtrema(transitions)

	_, _, err := buildTransitionIndex(transitions, stateMin, stateMax, eventMin, eventMax, 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAllocation))
}

func TestBuildCallbackIndexSkipsRowsOutsideRange(t *testing.T) {
	callbacks := []StateCallbacks{
		{State: 1},
		{State: 2},
		{State: 99}, // outside [1,2], must be skipped
	}
	index := buildCallbackIndex(callbacks, 1, 2)

	require.Len(t, index, 2)
	require.Same(t, &callbacks[0], index[0])
	require.Same(t, &callbacks[1], index[1])
}
