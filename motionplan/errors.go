package motionplan

import "errors"

// Sentinel errors returned by the planner. Infeasible-input and no-path
// conditions are not represented here: per the planner's failure
// semantics those surface as a Plan with Feasible == false, not an error.
var (
	// ErrGridTooSmall names the case of a Grid with no usable occupiable
	// region at all (e.g. a grid smaller than the robot footprint). No
	// function in this package returns it: such a grid yields no viewing
	// poses, and Select reports a Plan with Feasible == false.
	ErrGridTooSmall = errors.New("motionplan: grid too small for robot footprint")

	// ErrNoObstacles is returned by Select when called with zero obstacles;
	// callers should special-case "visit nothing" before reaching the
	// selector rather than pay for an empty subset search.
	ErrNoObstacles = errors.New("motionplan: no obstacles to visit")
)
