package motorcmd

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/gridplanner/motionplan"
)

func TestGenerateProtocolEndsWithStopAndFin(t *testing.T) {
	states := []motionplan.CellState{
		motionplan.NewCellState(1, 1, motionplan.North),
		motionplan.NewCellState(1, 2, motionplan.North),
	}
	tokens, err := GenerateProtocol(states, nil, 0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, tokens[0], test.ShouldEqual, ":1/MOTOR/FWD/50/10;")
	test.That(t, tokens[len(tokens)-2], test.ShouldEqual, ":2/MOTOR/STOP/0/0;")
	test.That(t, tokens[len(tokens)-1], test.ShouldEqual, "FIN")
}

func TestGenerateProtocolCompressesConsecutiveForward(t *testing.T) {
	states := make([]motionplan.CellState, 0, 3)
	for y := 1; y <= 3; y++ {
		states = append(states, motionplan.NewCellState(1, y, motionplan.North))
	}
	tokens, err := GenerateProtocol(states, nil, 75)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tokens[0], test.ShouldEqual, ":1/MOTOR/FWD/75/20;")
}

func TestGenerateProtocolCustomSpeed(t *testing.T) {
	states := []motionplan.CellState{
		motionplan.NewCellState(1, 1, motionplan.North),
		motionplan.NewCellState(1, 0, motionplan.North),
	}
	tokens, err := GenerateProtocol(states, nil, 90)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tokens[0], test.ShouldEqual, ":1/MOTOR/REV/90/10;")
}
