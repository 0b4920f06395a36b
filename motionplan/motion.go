package motionplan

// TurnProfile is one of the two arc geometries a differential-drive turn
// can be executed with: a number of forward cells swept and a number of
// lateral cells gained, per the robot's two supported turn radii.
type TurnProfile struct {
	Forward int
	Lateral int
}

// The two turn profiles the robot supports. Turn31 is the tighter radius
// (3 cells swept forward, 1 gained laterally); Turn42 is the wider radius.
var (
	Turn31 = TurnProfile{Forward: 3, Lateral: 1}
	Turn42 = TurnProfile{Forward: 4, Lateral: 2}
)

// TurnFactor scales an arc turn's rotation cost. TurnRadius is carried for
// completeness with the original constants; the turn geometry itself is
// expressed by TurnProfile, so TurnRadius plays no part in the cost formula.
const (
	TurnFactor = 1
	TurnRadius = 1
)

// ArcPremium is added to the cost of every arc move on top of its distance,
// so the search prefers straight lines when an arc and a straight path tie
// on distance alone.
const ArcPremium = 10

// moveStraightCost is the per-cell cost of a straight forward or reverse
// move.
const moveStraightCost = 1

// Neighbor is one state reachable from a given (x, y, heading) in a single
// motion primitive, with the cost of making that move.
type Neighbor struct {
	State CellState
	Cost  int
}

// turnStep describes one of the four 90-degree arc primitives: the heading
// delta it applies and the (forward, lateral) signs of the sweep relative
// to the current heading's unit vectors.
type turnStep struct {
	deltaHeading int // applied mod 8 to the current heading
	forwardSign  int // sign applied to the forward-axis sweep distance
	lateralSign  int // sign applied to the lateral-axis sweep distance
}

// The four arc primitives: forward-left, forward-right, reverse-left,
// reverse-right. "Forward" and "lateral" axes are relative to the heading
// the robot starts the arc in.
var turnSteps = []turnStep{
	{deltaHeading: -2, forwardSign: 1, lateralSign: 1},   // forward-left
	{deltaHeading: 2, forwardSign: 1, lateralSign: -1},   // forward-right
	{deltaHeading: 2, forwardSign: -1, lateralSign: 1},   // reverse-left
	{deltaHeading: -2, forwardSign: -1, lateralSign: -1}, // reverse-right
}

// Neighbors returns every state reachable from (x, y, h) in one motion
// primitive under the given turn profile: a straight forward step, a
// straight reverse step, and the four arc turns, each filtered by grid
// legality.
func Neighbors(grid *Grid, x, y int, h Heading, profile TurnProfile) []Neighbor {
	var out []Neighbor

	if n, ok := straightNeighbor(grid, x, y, h, 1); ok {
		out = append(out, n)
	}
	if n, ok := straightNeighbor(grid, x, y, h, -1); ok {
		out = append(out, n)
	}
	out = append(out, arcNeighbors(grid, x, y, h, profile)...)
	return out
}

// straightNeighbor returns the state one cell forward (dir=1) or backward
// (dir=-1) of (x, y, h), if legal.
func straightNeighbor(grid *Grid, x, y int, h Heading, dir int) (Neighbor, bool) {
	dx, dy := h.unitVector()
	nx, ny := x+dx*dir, y+dy*dir
	if !grid.Reachable(nx, ny) {
		return Neighbor{}, false
	}
	cost := moveStraightCost + SafeCost(grid, nx, ny)
	return Neighbor{State: NewCellState(nx, ny, h), Cost: cost}, true
}

// arcNeighbors returns the legal 90-degree arc turns out of (x, y, h) for
// the given profile.
func arcNeighbors(grid *Grid, x, y int, h Heading, profile TurnProfile) []Neighbor {
	fx, fy := h.unitVector()   // forward axis unit vector
	lx, ly := -fy, fx          // lateral axis unit vector (left-handed +90)

	var out []Neighbor
	for _, step := range turnSteps {
		nx := x + fx*profile.Forward*step.forwardSign + lx*profile.Lateral*step.lateralSign
		ny := y + fy*profile.Forward*step.forwardSign + ly*profile.Lateral*step.lateralSign
		nh := Heading((int(h) + step.deltaHeading + 8) % 8)

		if !grid.ReachablePreTurn(x, y) || !grid.ReachableTurn(nx, ny) {
			continue
		}
		rotationCost := h.RotationCost(nh)
		cost := rotationCost*TurnFactor + moveStraightCost + ArcPremium + SafeCost(grid, nx, ny)
		out = append(out, Neighbor{State: NewCellState(nx, ny, nh), Cost: cost})
	}
	return out
}

// SafeCost returns the cost penalty applied to a move landing on (x, y)
// because it passes unusually close to an obstacle's corner: the original
// planner penalizes diagonal near-misses at (|dx|,|dy|) of (2,2), (1,2) or
// (2,1) from any obstacle, since those are the cells a turning robot could
// clip the obstacle's corner while still satisfying the coarser Reachable
// predicate.
func SafeCost(grid *Grid, x, y int) int {
	for _, ob := range grid.Obstacles {
		dx, dy := abs(ob.X-x), abs(ob.Y-y)
		if (dx == 2 && dy == 2) || (dx == 1 && dy == 2) || (dx == 2 && dy == 1) {
			return SafeCostPenalty
		}
	}
	return 0
}

// SafeCostPenalty is the cost added by SafeCost when a move triggers it.
const SafeCostPenalty = 1000
