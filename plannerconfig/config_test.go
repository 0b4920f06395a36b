package plannerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/gridplanner/motionplan"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	content := `{
		"robot_x": 1, "robot_y": 1, "robot_dir": 0,
		"obstacles": [{"x": 5, "y": 10, "d": 2, "id": 1}]
	}`
	test.That(t, os.WriteFile(path, []byte(content), 0o600), test.ShouldBeNil)

	cfg, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Width, test.ShouldEqual, motionplan.DefaultWidth)
	test.That(t, len(cfg.Obstacles), test.ShouldEqual, 1)
	test.That(t, cfg.Obstacles[0].Facing, test.ShouldEqual, 2)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	content := "robot_x: 1\nrobot_y: 1\nrobot_dir: 0\nobstacles:\n  - x: 5\n    y: 10\n    d: 2\n    id: 1\n"
	test.That(t, os.WriteFile(path, []byte(content), 0o600), test.ShouldBeNil)

	cfg, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(cfg.Obstacles), test.ShouldEqual, 1)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.txt")
	test.That(t, os.WriteFile(path, []byte("irrelevant"), 0o600), test.ShouldBeNil)

	_, err := Load(path)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestGridAndRobotStart(t *testing.T) {
	cfg := &Config{
		Width: 20, Height: 20,
		RobotX: 2, RobotY: 3, RobotDir: 2,
		Obstacles: []ObstacleSpec{{X: 5, Y: 5, Facing: 4, ID: 9}},
	}
	grid, obstacles := cfg.Grid()
	test.That(t, grid.Width, test.ShouldEqual, 20)
	test.That(t, len(obstacles), test.ShouldEqual, 1)
	test.That(t, obstacles[0].ID, test.ShouldEqual, 9)

	start := cfg.RobotStart()
	test.That(t, start.X, test.ShouldEqual, 2)
	test.That(t, start.Heading, test.ShouldEqual, motionplan.East)
}
