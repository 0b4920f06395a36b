package motionplan

import (
	"context"
	"testing"

	"go.viam.com/test"
)

func TestAstarSearchFindsDirectPath(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	start := NewCellState(5, 5, North)

	cost, path, ok := astarSearch(grid, start, 5, 9, North, Turn31)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cost, test.ShouldBeGreaterThanOrEqualTo, 4)
	test.That(t, path[0].key(), test.ShouldResemble, start.key())
	test.That(t, path[len(path)-1].X, test.ShouldEqual, 5)
	test.That(t, path[len(path)-1].Y, test.ShouldEqual, 9)
	test.That(t, path[len(path)-1].Heading, test.ShouldEqual, North)
}

func TestAstarSearchUnreachableGoal(t *testing.T) {
	grid := NewGrid(3, 3)
	start := NewCellState(1, 1, North)

	_, _, ok := astarSearch(grid, start, 50, 50, North, Turn31)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestPathTablesGenerateDiagonalIsZero(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	states := []CellState{
		NewCellState(5, 5, North),
		NewCellState(5, 9, North),
	}

	var tables PathTables
	err := tables.Generate(context.Background(), nil, grid, Turn31, states)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tables.Cost[0][0], test.ShouldEqual, 0)
	test.That(t, tables.Reachable(0, 1), test.ShouldBeTrue)
}
