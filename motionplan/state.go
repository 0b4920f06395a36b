package motionplan

// NoScreenshot is the ScreenshotID carried by a CellState that does not mark
// an obstacle photograph.
const NoScreenshot = -1

// CellState is a pose of the robot on the grid: its position, the heading it
// faces, and (optionally) the id of the obstacle photographed there.
//
// Two CellStates are equal for planning purposes iff their (X, Y, Heading)
// triples match; ScreenshotID is metadata carried alongside and does not
// affect identity, graph search, or the pairwise-cost tables.
type CellState struct {
	X, Y         int
	Heading      Heading
	ScreenshotID int
}

// NewCellState builds a CellState with no screenshot marker.
func NewCellState(x, y int, h Heading) CellState {
	return CellState{X: x, Y: y, Heading: h, ScreenshotID: NoScreenshot}
}

// WithScreenshot returns a copy of s stamped with the given obstacle id.
func (s CellState) WithScreenshot(id int) CellState {
	s.ScreenshotID = id
	return s
}

// key is the planning-identity of s: its (x, y, heading) triple.
func (s CellState) key() stateKey {
	return stateKey{X: s.X, Y: s.Y, Heading: s.Heading}
}

// Eq reports whether s and other describe the same pose, ignoring
// ScreenshotID.
func (s CellState) Eq(other CellState) bool {
	return s.key() == other.key()
}

// stateKey is the planning-identity of a CellState, used as a map key for
// closed sets and parent pointers during search.
type stateKey struct {
	X, Y    int
	Heading Heading
}

// Obstacle is a fixed grid cell carrying a photographable symbol on one of
// its four sides.
type Obstacle struct {
	X, Y   int
	Facing Heading
	ID     int
}
