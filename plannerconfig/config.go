// Package plannerconfig loads a planner run's input (grid size, robot
// start pose, and obstacle list) from a JSON or YAML file.
package plannerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"go.viam.com/gridplanner/motionplan"
)

// ErrUnsupportedExtension is returned by Load when the config path's
// extension is neither .json, .yaml nor .yml.
var ErrUnsupportedExtension = errors.New("plannerconfig: unsupported file extension")

// ObstacleSpec is one obstacle entry in a config file, using the original
// planner's field names (x, y, d for facing direction, id).
type ObstacleSpec struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Facing int `json:"d" yaml:"d"`
	ID     int `json:"id" yaml:"id"`
}

// Config is the full input to one planner solve: grid dimensions, robot
// start pose, the obstacles to visit, and the retry flag.
type Config struct {
	Width     int            `json:"width" yaml:"width"`
	Height    int            `json:"height" yaml:"height"`
	RobotX    int            `json:"robot_x" yaml:"robot_x"`
	RobotY    int            `json:"robot_y" yaml:"robot_y"`
	RobotDir  int            `json:"robot_dir" yaml:"robot_dir"`
	Retrying  bool           `json:"retrying" yaml:"retrying"`
	Speed     int            `json:"speed" yaml:"speed"`
	Obstacles []ObstacleSpec `json:"obstacles" yaml:"obstacles"`
}

// Load reads a Config from path, dispatching on its file extension: .json
// is decoded with encoding/json, .yaml/.yml with gopkg.in/yaml.v2.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := &Config{Width: motionplan.DefaultWidth, Height: motionplan.DefaultHeight}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing JSON config")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing YAML config")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedExtension, "%q", ext)
	}

	return cfg, nil
}

// Grid builds a motionplan.Grid and obstacle list from the config.
func (c *Config) Grid() (*motionplan.Grid, []motionplan.Obstacle) {
	grid := motionplan.NewGrid(c.Width, c.Height)
	obstacles := make([]motionplan.Obstacle, len(c.Obstacles))
	for i, o := range c.Obstacles {
		ob := motionplan.Obstacle{X: o.X, Y: o.Y, Facing: motionplan.Heading(o.Facing), ID: o.ID}
		obstacles[i] = ob
		grid.AddObstacle(ob)
	}
	return grid, obstacles
}

// RobotStart builds the robot's starting CellState from the config.
func (c *Config) RobotStart() motionplan.CellState {
	return motionplan.NewCellState(c.RobotX, c.RobotY, motionplan.Heading(c.RobotDir))
}
