package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestNeighborsStraightMoves(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	neighbors := Neighbors(grid, 5, 5, North, Turn31)

	var sawForward, sawReverse bool
	for _, n := range neighbors {
		if n.State.X == 5 && n.State.Y == 6 && n.State.Heading == North {
			sawForward = true
		}
		if n.State.X == 5 && n.State.Y == 4 && n.State.Heading == North {
			sawReverse = true
		}
	}
	test.That(t, sawForward, test.ShouldBeTrue)
	test.That(t, sawReverse, test.ShouldBeTrue)
}

func TestNeighborsRespectGridBounds(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	neighbors := Neighbors(grid, 1, 1, South, Turn31)
	for _, n := range neighbors {
		test.That(t, grid.occupiable(n.State.X, n.State.Y), test.ShouldBeTrue)
	}
}

func TestSafeCostTriggersNearObstacleCorners(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	grid.AddObstacle(Obstacle{X: 10, Y: 10, Facing: East, ID: 1})

	test.That(t, SafeCost(grid, 12, 12), test.ShouldEqual, SafeCostPenalty)
	test.That(t, SafeCost(grid, 11, 12), test.ShouldEqual, SafeCostPenalty)
	test.That(t, SafeCost(grid, 15, 15), test.ShouldEqual, 0)
}
