package motionplan

// primaryDepth and secondaryDepth are the two straight-line distances (in
// cells) from an obstacle's facing side at which the robot can stop to
// photograph it, tried in order.
const (
	primaryDepth   = 2
	secondaryDepth = 3
)

// lateralOffset is the sideways displacement applied to produce the "left"
// and "right" variants of a viewing pose, used only when retry is true.
const lateralOffset = 1

// ScreenshotCost is the fixed penalty charged for photographing an obstacle
// from any pose other than its nearest (primary-depth, head-on) viewing
// pose: the farther depth and the lateral retry variants all carry it.
const ScreenshotCost = 50

// ViewPose is a candidate robot pose from which an obstacle's photographed
// side is visible: the pose faces the obstacle head-on (or, in a retry
// pose, offset laterally from head-on) from one of two standoff depths.
type ViewPose struct {
	State    CellState
	Obstacle Obstacle
	SnapSide SnapSide
	Penalty  int
}

// SnapSide records which lateral variant of a viewing pose this is, used by
// the command translator to derive the SNAP suffix.
type SnapSide int

const (
	// SnapCenter is a pose directly facing the obstacle, no lateral offset.
	SnapCenter SnapSide = iota
	// SnapLeft is a pose offset to the robot's left of the head-on pose.
	SnapLeft
	// SnapRight is a pose offset to the robot's right of the head-on pose.
	SnapRight
)

func (s SnapSide) String() string {
	switch s {
	case SnapLeft:
		return "L"
	case SnapRight:
		return "R"
	default:
		return "C"
	}
}

// GenerateViewPoses returns the candidate poses from which obstacle ob can
// be photographed on grid. Poses are emitted primary-depth first,
// secondary-depth second, each centred before its lateral variants; callers
// that want only head-on poses should take the SnapCenter entries.
//
// When retry is false, only SnapCenter poses are produced. When retry is
// true, lateral-offset poses are admitted as well, widening the search for
// obstacles whose head-on poses are all blocked.
func GenerateViewPoses(grid *Grid, ob Obstacle, retry bool) []ViewPose {
	var poses []ViewPose
	for _, depth := range []int{primaryDepth, secondaryDepth} {
		poses = append(poses, viewPosesAtDepth(grid, ob, depth, retry)...)
	}
	return poses
}

// viewPosesAtDepth builds the centre pose (and, if retry, the left/right
// poses) standing depth cells away from ob along its facing axis.
func viewPosesAtDepth(grid *Grid, ob Obstacle, depth int, retry bool) []ViewPose {
	// The robot stands out along the obstacle's facing direction, looking
	// back at it: facing South means the photographed
	// side is to the obstacle's south, so the robot stands further south
	// and faces North.
	dx, dy := ob.Facing.unitVector()
	standX := ob.X + dx*depth
	standY := ob.Y + dy*depth
	robotHeading := ob.Facing.Opposite()

	penalty := depthPenalty(depth)

	var poses []ViewPose
	if grid.Reachable(standX, standY) {
		poses = append(poses, ViewPose{
			State:    NewCellState(standX, standY, robotHeading).WithScreenshot(ob.ID),
			Obstacle: ob,
			SnapSide: SnapCenter,
			Penalty:  penalty,
		})
	}
	if !retry {
		return poses
	}

	// Lateral variants slide the stand point along the axis perpendicular
	// to the facing direction. "Left" is the facing vector rotated +90
	// degrees (counter-clockwise on the grid's X-East/Y-North convention).
	lx, ly := -dy, dx
	left := ViewPose{
		State:    NewCellState(standX+lx*lateralOffset, standY+ly*lateralOffset, robotHeading).WithScreenshot(ob.ID),
		Obstacle: ob,
		SnapSide: SnapLeft,
		Penalty:  ScreenshotCost,
	}
	right := ViewPose{
		State:    NewCellState(standX-lx*lateralOffset, standY-ly*lateralOffset, robotHeading).WithScreenshot(ob.ID),
		Obstacle: ob,
		SnapSide: SnapRight,
		Penalty:  ScreenshotCost,
	}
	if grid.Reachable(left.State.X, left.State.Y) {
		poses = append(poses, left)
	}
	if grid.Reachable(right.State.X, right.State.Y) {
		poses = append(poses, right)
	}
	return poses
}

// depthPenalty returns 0 for the nearer (primary) standoff depth and
// ScreenshotCost for any farther depth.
func depthPenalty(depth int) int {
	if depth == primaryDepth {
		return 0
	}
	return ScreenshotCost
}

// GenerateAllViewPoses returns, for each obstacle in obstacles (in order),
// its candidate viewing poses on grid.
func GenerateAllViewPoses(grid *Grid, obstacles []Obstacle, retry bool) [][]ViewPose {
	all := make([][]ViewPose, len(obstacles))
	for i, ob := range obstacles {
		all[i] = GenerateViewPoses(grid, ob, retry)
	}
	return all
}
