package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestOccupiableBounds(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	test.That(t, grid.occupiable(0, 0), test.ShouldBeFalse)
	test.That(t, grid.occupiable(1, 1), test.ShouldBeTrue)
	test.That(t, grid.occupiable(DefaultWidth-1, DefaultHeight-1), test.ShouldBeFalse)
	test.That(t, grid.occupiable(DefaultWidth-2, DefaultHeight-2), test.ShouldBeTrue)
}

func TestReachableAvoidsObstacleMargin(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	grid.AddObstacle(Obstacle{X: 10, Y: 10, Facing: East, ID: 1})

	test.That(t, grid.Reachable(10, 10), test.ShouldBeFalse)
	test.That(t, grid.Reachable(11, 10), test.ShouldBeFalse) // within margin
	test.That(t, grid.Reachable(13, 10), test.ShouldBeTrue)  // clear
}

func TestReachableTurnStricterThanReachable(t *testing.T) {
	grid := NewGrid(DefaultWidth, DefaultHeight)
	grid.AddObstacle(Obstacle{X: 10, Y: 10, Facing: East, ID: 1})

	// (12, 10) clears the plain footprint margin but sits within the wider
	// mid-turn clearance radius.
	test.That(t, grid.Reachable(12, 10), test.ShouldBeTrue)
	test.That(t, grid.ReachableTurn(12, 10), test.ShouldBeFalse)
}
