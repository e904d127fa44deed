// SPDX-License-Identifier: MIT

package patrol_test

import (
	"testing"

	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/stretchr/testify/require"
)

// Canonical 10×10 lab:
//
//	....#.....
//	.........#
//	..........
//	..#.......
//	.......#..
//	..........
//	.#..^.....
//	........#.
//	#.........
//	......#...
var (
	labObstacles = []patrol.Position{
		{X: 4, Y: 0}, {X: 9, Y: 1}, {X: 2, Y: 3}, {X: 7, Y: 4},
		{X: 1, Y: 6}, {X: 8, Y: 7}, {X: 0, Y: 8}, {X: 6, Y: 9},
	}
	labStart = patrol.GuardAt(patrol.Position{X: 4, Y: 6})
)

// Small loop room (4×4), the guard circles the middle:
//
//	.#..
//	...#
//	#...
//	..#.
var loopRoomObstacles = []patrol.Position{
	{X: 1, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 3},
}

// mustArea builds a w×h area holding obs, failing the test on any error.
func mustArea(t testing.TB, w, h int, obs ...patrol.Position) *patrol.Area {
	t.Helper()
	a, err := patrol.NewArea(w, h)
	require.NoError(t, err)
	for _, p := range obs {
		require.NoError(t, a.AddObstacle(p))
	}

	return a
}

func pos(x, y int) patrol.Position {
	return patrol.Position{X: x, Y: y}
}
