// Command planner runs the grid motion planner against a config file and
// prints the resulting command stream.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"go.viam.com/gridplanner/motionplan"
	"go.viam.com/gridplanner/motorcmd"
	"go.viam.com/gridplanner/plannerconfig"
)

var logger = golog.NewDevelopmentLogger("planner")

func main() {
	app := &cli.App{
		Name:  "planner",
		Usage: "plan a grid traversal and emit motor commands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to a JSON or YAML planner config",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "protocol",
				Usage: "emit the motor-protocol wire grammar instead of the core token grammar",
			},
			&cli.BoolFlag{
				Name:  "concurrent",
				Usage: "solve using SolveConcurrent instead of Solve",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := plannerconfig.Load(c.String("config"))
	if err != nil {
		return err
	}

	grid, obstacles := cfg.Grid()
	start := cfg.RobotStart()
	ctx := context.Background()

	solve := motionplan.Solve
	if c.Bool("concurrent") {
		solve = motionplan.SolveConcurrent
	}

	plan, err := solve(ctx, logger, grid, start, obstacles)
	if err != nil {
		return err
	}

	printPlanSummary(plan)

	var tokens []string
	if c.Bool("protocol") {
		tokens, err = motorcmd.GenerateProtocol(plan.States, obstacles, cfg.Speed)
	} else {
		tokens, err = motorcmd.Generate(plan.States, obstacles)
	}
	if err != nil {
		return err
	}

	printTokens(tokens)
	return nil
}

func printPlanSummary(plan motionplan.Plan) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"feasible", "visited", "dropped", "total cost"})
	t.AppendRow(table.Row{plan.Feasible, len(plan.Visited), len(plan.Dropped), plan.TotalCost})
	t.Render()
}

func printTokens(tokens []string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "token"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i, tok})
	}
	t.Render()
	fmt.Fprintf(os.Stdout, "%d tokens\n", len(tokens))
}
