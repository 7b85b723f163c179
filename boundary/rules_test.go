package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/boundary"
	"github.com/katalvlaran/mazerunner/core"
)

// inGrid returns an InBounds predicate for a rows×cols maze.
func inGrid(rows, cols int) func(core.Cell) bool {
	return func(c core.Cell) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
	}
}

func TestNewRules_Errors(t *testing.T) {
	start := core.Cell{Row: 2, Col: 0}
	cases := []struct {
		name  string
		rules []boundary.Rule
		err   error
	}{
		{"BadDirection", []boundary.Rule{{Cell: start, Dir: core.Direction(7)}}, boundary.ErrInvalidDirection},
		{"Duplicate", []boundary.Rule{{Cell: start, Dir: core.South}, {Cell: start, Dir: core.South}}, boundary.ErrDuplicateRule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := boundary.NewRules(tc.rules...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRules_Blocked(t *testing.T) {
	start := core.Cell{Row: 2, Col: 0}
	exit := core.Cell{Row: 0, Col: 2}
	rs, err := boundary.NewRules(
		boundary.Rule{Cell: start, Dir: core.South},
		boundary.Rule{Cell: exit, Dir: core.North},
	)
	require.NoError(t, err)

	assert.True(t, rs.Blocked(start, core.South))
	assert.True(t, rs.Blocked(exit, core.North))
	assert.False(t, rs.Blocked(start, core.North))
	assert.False(t, rs.Blocked(exit, core.South))
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, []boundary.Rule{
		{Cell: exit, Dir: core.North},
		{Cell: start, Dir: core.South},
	}, rs.List())
}

func TestRules_NilBlocksNothing(t *testing.T) {
	var rs *boundary.Rules
	assert.False(t, rs.Blocked(core.Cell{}, core.North))
	assert.Zero(t, rs.Len())
	assert.NoError(t, rs.Validate(inGrid(1, 1)))
}

func TestRules_Validate(t *testing.T) {
	cases := []struct {
		name string
		rule boundary.Rule
		err  error
	}{
		{"BelowStart", boundary.Rule{Cell: core.Cell{Row: 2, Col: 0}, Dir: core.South}, nil},
		{"WestEdge", boundary.Rule{Cell: core.Cell{Row: 1, Col: 0}, Dir: core.West}, nil},
		{"Outside", boundary.Rule{Cell: core.Cell{Row: 3, Col: 0}, Dir: core.South}, boundary.ErrRuleOutOfBounds},
		{"Interior", boundary.Rule{Cell: core.Cell{Row: 1, Col: 1}, Dir: core.East}, boundary.ErrRuleNotOnBoundary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := boundary.NewRules(tc.rule)
			require.NoError(t, err)
			err = rs.Validate(inGrid(3, 3))
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
