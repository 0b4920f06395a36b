package motionplan

import (
	"context"
	"testing"

	"go.viam.com/test"
)

func TestSolveTwoObstaclesColinearOrdering(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	obA := Obstacle{X: 5, Y: 10, Facing: East, ID: 1}
	obB := Obstacle{X: 5, Y: 15, Facing: East, ID: 2}
	grid.AddObstacle(obA)
	grid.AddObstacle(obB)

	start := NewCellState(1, 1, North)
	plan, err := Solve(context.Background(), nil, grid, start, []Obstacle{obA, obB})

	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Feasible, test.ShouldBeTrue)
	test.That(t, len(plan.Visited), test.ShouldEqual, 2)

	var sawFirst, sawSecond bool
	firstIndex, secondIndex := -1, -1
	for i, s := range plan.States {
		if s.ScreenshotID == 1 {
			sawFirst = true
			firstIndex = i
		}
		if s.ScreenshotID == 2 {
			sawSecond = true
			secondIndex = i
		}
	}
	test.That(t, sawFirst, test.ShouldBeTrue)
	test.That(t, sawSecond, test.ShouldBeTrue)
	test.That(t, firstIndex < secondIndex, test.ShouldBeTrue)
}

func TestSolveConcurrentMatchesFeasibility(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	ob := Obstacle{X: 5, Y: 10, Facing: East, ID: 1}
	grid.AddObstacle(ob)

	start := NewCellState(1, 1, North)
	plan, err := SolveConcurrent(context.Background(), nil, grid, start, []Obstacle{ob})

	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Feasible, test.ShouldBeTrue)
	test.That(t, len(plan.Visited), test.ShouldEqual, 1)
}

func TestSolveAllObstaclesUnreachableReturnsInfeasible(t *testing.T) {
	grid := NewGrid(5, 5)
	ob := Obstacle{X: 2, Y: 2, Facing: East, ID: 7}
	grid.AddObstacle(ob)

	start := NewCellState(1, 1, North)
	plan, err := Solve(context.Background(), nil, grid, start, []Obstacle{ob})

	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Feasible, test.ShouldBeFalse)
	test.That(t, len(plan.Dropped), test.ShouldEqual, 1)
}
