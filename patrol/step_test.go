// SPDX-License-Identifier: MIT

package patrol_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleStep_Forward(t *testing.T) {
	a := mustArea(t, 3, 3)
	g := patrol.GuardAt(pos(1, 2))

	require.NoError(t, patrol.SimpleStep{}.Step(&g, a))
	assert.Equal(t, patrol.NewGuard(pos(1, 1), patrol.North), g)
}

func TestSimpleStep_TurnsRightOnObstruction(t *testing.T) {
	a := mustArea(t, 3, 3, pos(1, 0))
	g := patrol.GuardAt(pos(1, 1))

	require.NoError(t, patrol.SimpleStep{}.Step(&g, a))
	assert.Equal(t, patrol.NewGuard(pos(2, 1), patrol.East), g, "turn and move happen in one step")
}

func TestSimpleStep_TurnsTwice(t *testing.T) {
	a := mustArea(t, 3, 3, pos(1, 0), pos(2, 1))
	g := patrol.GuardAt(pos(1, 1))

	require.NoError(t, patrol.SimpleStep{}.Step(&g, a))
	assert.Equal(t, patrol.NewGuard(pos(1, 2), patrol.South), g)
}

// TestSimpleStep_FailuresLeaveGuardUnchanged covers every failing branch.
func TestSimpleStep_FailuresLeaveGuardUnchanged(t *testing.T) {
	cases := []struct {
		name  string
		area  *patrol.Area
		guard patrol.Guard
		err   error
	}{
		{
			name:  "EdgeNegative",
			area:  mustArea(t, 3, 3),
			guard: patrol.GuardAt(pos(1, 0)),
			err:   patrol.ErrOutOfBounds,
		},
		{
			name:  "EdgePastWidth",
			area:  mustArea(t, 3, 3),
			guard: patrol.NewGuard(pos(2, 1), patrol.East),
			err:   patrol.ErrOutOfBounds,
		},
		{
			// East is blocked, the turn to South would leave a 3×1 strip.
			name:  "TurnThenOutOfBounds",
			area:  mustArea(t, 3, 1, pos(2, 0)),
			guard: patrol.NewGuard(pos(1, 0), patrol.East),
			err:   patrol.ErrOutOfBounds,
		},
		{
			name:  "Enclosed",
			area:  mustArea(t, 3, 3, pos(1, 0), pos(2, 1), pos(1, 2), pos(0, 1)),
			guard: patrol.GuardAt(pos(1, 1)),
			err:   patrol.ErrObstacle,
		},
		{
			name:  "EmptyArea",
			area:  mustArea(t, 0, 0),
			guard: patrol.GuardAt(pos(0, 0)),
			err:   patrol.ErrOutOfBounds,
		},
		{
			name:  "NoHeading",
			area:  mustArea(t, 3, 3),
			guard: patrol.Guard{Position: pos(1, 1)},
			err:   patrol.ErrInvalidDirection,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.guard
			err := patrol.SimpleStep{}.Step(&g, tc.area)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.guard, g, "guard mutated on failure")
		})
	}
}

// TestSimpleStep_NoMutationOnFailure_Random checks the no-partial-mutation
// guarantee over random areas and guards.
func TestSimpleStep_NoMutationOnFailure_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	failures := 0
	for trial := 0; trial < 2000; trial++ {
		w, h := 1+rng.Intn(4), 1+rng.Intn(4)
		a := mustArea(t, w, h)
		for i := 0; i < w*h; i++ {
			if rng.Intn(2) == 0 {
				_ = a.AddObstacle(a.Coordinate(i))
			}
		}
		before := patrol.NewGuard(a.Coordinate(rng.Intn(w*h)), patrol.Directions()[rng.Intn(4)])
		g := before
		if err := (patrol.SimpleStep{}).Step(&g, a); err != nil {
			failures++
			require.Equal(t, before, g, "trial %d: guard mutated on %v", trial, err)
			continue
		}
		require.True(t, a.InBounds(g.Position))
		require.False(t, a.IsObstructed(g.Position))
	}
	assert.Positive(t, failures, "the random set should exercise failing steps")
}

func TestStepFunc_Adapter(t *testing.T) {
	calls := 0
	var s patrol.StepStrategy = patrol.StepFunc(func(g *patrol.Guard, f patrol.Field) error {
		calls++
		return patrol.ErrObstacle
	})
	g := patrol.GuardAt(pos(0, 0))
	assert.ErrorIs(t, s.Step(&g, mustArea(t, 1, 1)), patrol.ErrObstacle)
	assert.Equal(t, 1, calls)
}
