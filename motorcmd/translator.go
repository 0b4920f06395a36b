// Package motorcmd translates a planned sequence of robot poses into
// motor-command token streams.
package motorcmd

import (
	"fmt"

	"github.com/pkg/errors"

	"go.viam.com/gridplanner/motionplan"
)

// ErrIllegalTransition is returned when two consecutive states in the input
// sequence are neither a straight move nor one of the eight legal 90-degree
// turns: a 180-degree flip or a repeated identical state.
var ErrIllegalTransition = errors.New("motorcmd: illegal state transition")

// unitLength is the centimeter distance a single grid cell represents.
const unitLength = 10

// maxRunLength is the largest distance value a single FW/BW token may carry
// before a new token must be started.
const maxRunLength = 90

// Generate consumes the assembled state sequence and obstacle list and
// produces the core motion-token grammar: FW/BW moves, FR/FL/BR/BL turns,
// SNAP markers, and a terminal FIN, with consecutive same-direction moves
// run-length compressed.
func Generate(states []motionplan.CellState, obstacles []motionplan.Obstacle) ([]string, error) {
	obstacleByID := make(map[int]motionplan.Obstacle, len(obstacles))
	for _, ob := range obstacles {
		obstacleByID[ob.ID] = ob
	}

	var tokens []string
	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]

		token, err := moveToken(prev, cur)
		if err != nil {
			return nil, err
		}
		tokens = appendCompressed(tokens, token)

		if cur.ScreenshotID != motionplan.NoScreenshot {
			ob, ok := obstacleByID[cur.ScreenshotID]
			if !ok {
				return nil, errors.Errorf("motorcmd: unknown obstacle id %d", cur.ScreenshotID)
			}
			tokens = append(tokens, snapToken(cur.ScreenshotID, ob, cur))
		}
	}
	tokens = append(tokens, "FIN")
	return tokens, nil
}

// moveKind classifies a token as a forward move, a reverse move, or anything
// else, so compression can tell whether two adjacent tokens are allowed to
// merge.
type moveKind int

const (
	kindOther moveKind = iota
	kindForward
	kindReverse
)

// moveToken returns the token for the prev -> cur transition: a straight
// FWnn/BWnn if the heading is unchanged, or one of FR00/FL00/BR00/BL00 if
// it is a legal 90-degree turn.
func moveToken(prev, cur motionplan.CellState) (string, error) {
	if prev.Heading == cur.Heading {
		forward, err := isForward(prev, cur)
		if err != nil {
			return "", err
		}
		if forward {
			return fmt.Sprintf("FW%02d", unitLength), nil
		}
		return fmt.Sprintf("BW%02d", unitLength), nil
	}
	return turnToken(prev, cur)
}

// isForward reports whether moving from prev to cur (same heading) is a
// forward step, per the heading's principal axis and sign.
func isForward(prev, cur motionplan.CellState) (bool, error) {
	dx, dy := cur.X-prev.X, cur.Y-prev.Y
	switch prev.Heading {
	case motionplan.East:
		if dx > 0 {
			return true, nil
		}
		if dx < 0 {
			return false, nil
		}
	case motionplan.West:
		if dx < 0 {
			return true, nil
		}
		if dx > 0 {
			return false, nil
		}
	case motionplan.North:
		if dy > 0 {
			return true, nil
		}
		if dy < 0 {
			return false, nil
		}
	case motionplan.South:
		if dy < 0 {
			return true, nil
		}
		if dy > 0 {
			return false, nil
		}
	}
	return false, ErrIllegalTransition
}

// turnToken returns the FR/FL/BR/BL token for a heading change from prev to
// cur, keyed on the (prev heading, new heading) pair and the sign of the
// perpendicular positional delta.
func turnToken(prev, cur motionplan.CellState) (string, error) {
	dy := cur.Y - prev.Y
	yUp := dy > 0

	switch {
	case prev.Heading == motionplan.North && cur.Heading == motionplan.East:
		return pick(yUp, "FR00", "BL00"), nil
	case prev.Heading == motionplan.North && cur.Heading == motionplan.West:
		return pick(yUp, "FL00", "BR00"), nil
	case prev.Heading == motionplan.East && cur.Heading == motionplan.North:
		return pick(yUp, "FL00", "BR00"), nil
	case prev.Heading == motionplan.East && cur.Heading == motionplan.South:
		return pick(yUp, "BL00", "FR00"), nil
	case prev.Heading == motionplan.South && cur.Heading == motionplan.East:
		return pick(yUp, "BR00", "FL00"), nil
	case prev.Heading == motionplan.South && cur.Heading == motionplan.West:
		return pick(yUp, "BL00", "FR00"), nil
	case prev.Heading == motionplan.West && cur.Heading == motionplan.North:
		return pick(yUp, "FR00", "BL00"), nil
	case prev.Heading == motionplan.West && cur.Heading == motionplan.South:
		return pick(yUp, "BR00", "FL00"), nil
	default:
		return "", ErrIllegalTransition
	}
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// appendCompressed appends token to tokens, merging it into the previous
// token if both are FW or both are BW and the previous token's distance has
// not yet reached maxRunLength.
func appendCompressed(tokens []string, token string) []string {
	if len(tokens) == 0 {
		return append(tokens, token)
	}
	last := tokens[len(tokens)-1]
	lastKind, lastDist := moveKindAndDistance(last)
	curKind, curDist := moveKindAndDistance(token)

	if lastKind == kindOther || lastKind != curKind || lastDist >= maxRunLength {
		return append(tokens, token)
	}
	tokens[len(tokens)-1] = fmt.Sprintf("%s%02d", last[:2], lastDist+curDist)
	return tokens
}

// moveKindAndDistance parses a token's FW/BW prefix and distance, or
// returns kindOther if it is not a move token.
func moveKindAndDistance(token string) (moveKind, int) {
	if len(token) < 4 {
		return kindOther, 0
	}
	var dist int
	switch token[:2] {
	case "FW":
		dist = parseDigits(token[2:])
		return kindForward, dist
	case "BW":
		dist = parseDigits(token[2:])
		return kindReverse, dist
	default:
		return kindOther, 0
	}
}

func parseDigits(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// snapAxisSign describes, for one (obstacle_facing, robot_facing) pair, the
// coordinate axis to compare and which side of that comparison is "left".
type snapAxisSign struct {
	axis          byte // 'x' or 'y'
	leftWhenGreater bool
}

// snapTable mirrors the original planner's fixed direction map: which axis
// distinguishes left from right for each (obstacle facing, robot facing)
// pair, and which side "obstacle coordinate greater than robot coordinate"
// means.
var snapTable = map[[2]motionplan.Heading]snapAxisSign{
	{motionplan.West, motionplan.East}:  {axis: 'y', leftWhenGreater: true},
	{motionplan.East, motionplan.West}:  {axis: 'y', leftWhenGreater: false},
	{motionplan.North, motionplan.South}: {axis: 'x', leftWhenGreater: true},
	{motionplan.South, motionplan.North}: {axis: 'x', leftWhenGreater: false},
}

// snapToken returns the SNAP<id>[_L|_C|_R] token for photographing ob from
// state robot.
func snapToken(id int, ob motionplan.Obstacle, robot motionplan.CellState) string {
	entry, ok := snapTable[[2]motionplan.Heading{ob.Facing, robot.Heading}]
	if !ok {
		return fmt.Sprintf("SNAP%d", id)
	}

	var obVal, robotVal int
	if entry.axis == 'x' {
		obVal, robotVal = ob.X, robot.X
	} else {
		obVal, robotVal = ob.Y, robot.Y
	}

	if obVal == robotVal {
		return fmt.Sprintf("SNAP%d_C", id)
	}
	greater := obVal > robotVal
	left := greater == entry.leftWhenGreater
	if left {
		return fmt.Sprintf("SNAP%d_L", id)
	}
	return fmt.Sprintf("SNAP%d_R", id)
}
