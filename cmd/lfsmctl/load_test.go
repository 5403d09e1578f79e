package main

import (
	"testing"

	"github.com/larshei/lfsm"
	"github.com/stretchr/testify/require"
)

func TestLoadTableBuildsTransitionsAndCallbacks(t *testing.T) {
	doc, err := loadTable("testdata/temperature.yaml")
	require.NoError(t, err)

	transitions, callbacks := doc.build()
	require.Len(t, transitions, 5)
	require.Len(t, callbacks, 3)

	require.Equal(t, fsm.State(2), transitions[0].Current)
	require.Nil(t, transitions[0].Guard)
	require.NotNil(t, transitions[1].Guard)
}

func TestNamedGuard(t *testing.T) {
	require.Nil(t, namedGuard(""))
	require.Nil(t, namedGuard("none"))
	require.NotNil(t, namedGuard("always"))
	require.True(t, namedGuard("always")(nil))
	require.Nil(t, namedGuard("unknown"))
}
