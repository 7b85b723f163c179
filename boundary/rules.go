// Package boundary holds the boundary-void rules of a maze: directions at
// specific cells that must never be crossed even though no wall is sensed
// there, because the gap leads off the maze surface. Typical voids are the
// open edge below the start cell and the open edge above the exit.
//
// Rules are plain configuration data. They are validated on their own and
// consulted by the explorer before it asks the robot about a wall.
package boundary

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mazerunner/core"
)

var (
	// ErrInvalidDirection indicates a rule with a direction outside N/E/S/W.
	ErrInvalidDirection = errors.New("boundary: invalid direction")
	// ErrDuplicateRule indicates the same cell and direction listed twice.
	ErrDuplicateRule = errors.New("boundary: duplicate rule")
	// ErrRuleOutOfBounds indicates a rule anchored on a cell outside the maze.
	ErrRuleOutOfBounds = errors.New("boundary: rule cell outside maze")
	// ErrRuleNotOnBoundary indicates a rule whose direction stays inside the maze.
	ErrRuleNotOnBoundary = errors.New("boundary: rule does not lead off the maze")
)

// Rule blocks movement from Cell in direction Dir.
type Rule struct {
	Cell core.Cell
	Dir  core.Direction
}

func (r Rule) String() string {
	return fmt.Sprintf("%v %s", r.Cell, r.Dir)
}

// Rules is an immutable set of boundary-void rules. A nil *Rules blocks
// nothing.
type Rules struct {
	blocked map[Rule]struct{}
}

// NewRules builds a rule set, rejecting invalid directions and duplicates.
func NewRules(rules ...Rule) (*Rules, error) {
	rs := &Rules{blocked: make(map[Rule]struct{}, len(rules))}
	for _, r := range rules {
		if !r.Dir.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, r)
		}
		if _, dup := rs.blocked[r]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateRule, r)
		}
		rs.blocked[r] = struct{}{}
	}

	return rs, nil
}

// Blocked reports whether moving from c in direction d is forbidden.
func (rs *Rules) Blocked(c core.Cell, d core.Direction) bool {
	if rs == nil {
		return false
	}
	_, ok := rs.blocked[Rule{Cell: c, Dir: d}]

	return ok
}

// Len returns the number of rules.
func (rs *Rules) Len() int {
	if rs == nil {
		return 0
	}

	return len(rs.blocked)
}

// List returns the rules ordered by cell (row-major) then direction.
func (rs *Rules) List() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, 0, len(rs.blocked))
	for r := range rs.blocked {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cell != b.Cell {
			if a.Cell.Row != b.Cell.Row {
				return a.Cell.Row < b.Cell.Row
			}
			return a.Cell.Col < b.Cell.Col
		}
		return a.Dir < b.Dir
	})

	return out
}

// Validate checks every rule against the maze extent described by inBounds:
// the anchor cell must be inside the maze and the blocked step must leave it.
func (rs *Rules) Validate(inBounds func(core.Cell) bool) error {
	for _, r := range rs.List() {
		if !inBounds(r.Cell) {
			return fmt.Errorf("%w: %v", ErrRuleOutOfBounds, r)
		}
		if inBounds(r.Cell.Step(r.Dir)) {
			return fmt.Errorf("%w: %v", ErrRuleNotOnBoundary, r)
		}
	}

	return nil
}
