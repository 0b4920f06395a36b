package motorcmd

import (
	"fmt"
	"strconv"
	"strings"

	"go.viam.com/gridplanner/motionplan"
)

// DefaultSpeed is the motor speed used by GenerateProtocol when the caller
// passes a non-positive speed.
const DefaultSpeed = 50

// GenerateProtocol is an isomorphic re-encoding of Generate's token stream
// into the wire format understood by the motor controller:
// ":ID/MOTOR/FWD|REV|TURN90L|TURN90R|STOP/SPEED/DIST;". The command id
// counter starts at 1 on every call: the planner retains no cross-call
// state.
func GenerateProtocol(states []motionplan.CellState, obstacles []motionplan.Obstacle, speed int) ([]string, error) {
	if speed <= 0 {
		speed = DefaultSpeed
	}

	obstacleByID := make(map[int]motionplan.Obstacle, len(obstacles))
	for _, ob := range obstacles {
		obstacleByID[ob.ID] = ob
	}

	var commands []string
	cmdID := 1

	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]

		if cur.Heading == prev.Heading {
			forward, err := isForward(prev, cur)
			if err != nil {
				return nil, err
			}
			verb := "REV"
			if forward {
				verb = "FWD"
			}
			commands = append(commands, fmt.Sprintf(":%d/MOTOR/%s/%d/10;", cmdID, verb, speed))
			cmdID++
		} else {
			turn, err := protocolTurn(prev, cur)
			if err != nil {
				return nil, err
			}
			commands = append(commands, fmt.Sprintf(":%d/MOTOR/%s/%d/0;", cmdID, turn, speed))
			cmdID++
		}

		if cur.ScreenshotID != motionplan.NoScreenshot {
			ob, ok := obstacleByID[cur.ScreenshotID]
			if !ok {
				return nil, fmt.Errorf("motorcmd: unknown obstacle id %d", cur.ScreenshotID)
			}
			commands = append(commands, snapToken(cur.ScreenshotID, ob, cur))
		}
	}

	commands = append(commands, fmt.Sprintf(":%d/MOTOR/STOP/0/0;", cmdID))
	commands = append(commands, "FIN")

	return compressProtocol(commands), nil
}

// protocolTurn mirrors turnToken's (prev, cur) heading-pair dispatch but
// returns the wire protocol's TURN90L/TURN90R verb instead of a core-grammar
// token.
func protocolTurn(prev, cur motionplan.CellState) (string, error) {
	dy := cur.Y - prev.Y
	yUp := dy > 0

	switch {
	case prev.Heading == motionplan.North && cur.Heading == motionplan.East:
		return pick(yUp, "TURN90R", "TURN90L"), nil
	case prev.Heading == motionplan.North && cur.Heading == motionplan.West:
		return pick(yUp, "TURN90L", "TURN90R"), nil
	case prev.Heading == motionplan.East && cur.Heading == motionplan.North:
		return pick(yUp, "TURN90L", "TURN90R"), nil
	case prev.Heading == motionplan.East && cur.Heading == motionplan.South:
		return pick(yUp, "TURN90L", "TURN90R"), nil
	case prev.Heading == motionplan.South && cur.Heading == motionplan.East:
		return pick(yUp, "TURN90R", "TURN90L"), nil
	case prev.Heading == motionplan.South && cur.Heading == motionplan.West:
		return pick(yUp, "TURN90L", "TURN90R"), nil
	case prev.Heading == motionplan.West && cur.Heading == motionplan.North:
		return pick(yUp, "TURN90R", "TURN90L"), nil
	case prev.Heading == motionplan.West && cur.Heading == motionplan.South:
		return pick(yUp, "TURN90R", "TURN90L"), nil
	default:
		return "", ErrIllegalTransition
	}
}

// compressProtocol folds consecutive FWD/FWD or REV/REV commands by adding
// 10 to the prior command's distance field, capping at 90 rather than
// overflowing into a third digit, matching the core grammar's compression
// rule applied to the wire format.
func compressProtocol(commands []string) []string {
	if len(commands) == 0 {
		return commands
	}
	out := []string{commands[0]}
	for i := 1; i < len(commands); i++ {
		cur := commands[i]
		last := out[len(out)-1]

		curIsFwd := strings.Contains(cur, "/MOTOR/FWD/")
		curIsRev := strings.Contains(cur, "/MOTOR/REV/")
		lastIsFwd := strings.Contains(last, "/MOTOR/FWD/")
		lastIsRev := strings.Contains(last, "/MOTOR/REV/")

		if (curIsFwd && lastIsFwd) || (curIsRev && lastIsRev) {
			if merged, ok := mergeDistance(last); ok {
				out[len(out)-1] = merged
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

// mergeDistance adds 10 to cmd's trailing distance field, returning ok=false
// if the distance is already at the 90-unit cap.
func mergeDistance(cmd string) (string, bool) {
	trimmed := strings.TrimSuffix(cmd, ";")
	parts := strings.Split(trimmed, "/")
	distance, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || distance == 90 {
		return cmd, false
	}
	parts[len(parts)-1] = strconv.Itoa(distance + 10)
	return strings.Join(parts, "/") + ";", true
}
