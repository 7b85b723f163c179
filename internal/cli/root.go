package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/dfs"
	"github.com/katalvlaran/mazerunner/internal/config"
	"github.com/katalvlaran/mazerunner/internal/logger"
	"github.com/katalvlaran/mazerunner/layout"
	"github.com/katalvlaran/mazerunner/render"
	"github.com/katalvlaran/mazerunner/robot"
	"github.com/katalvlaran/mazerunner/solver"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFlags mirrors config.Config; only flags the user set override it.
type runFlags struct {
	maze      string
	order     string
	theme     string
	noColor   bool
	logLevel  string
	logFormat string
	debug     bool
}

func newRootCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:          "mazerunner",
		Short:        "Map a maze, find the shortest route, drive it out and back",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)

			cleanup, err := logger.Setup(logger.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Debug:  f.debug,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer cleanup()

			return runMission(cmd, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.maze, "maze", "m", "", "Layout file (default: embedded demo maze)")
	fl.StringVar(&f.order, "order", "", "Exploration order: relative or fixed")
	fl.StringVar(&f.theme, "theme", "", "Render theme: blocks or ascii")
	fl.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable verbose logging with source locations")

	cmd.AddCommand(validateCmd())
	return cmd
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("maze") {
		cfg.Maze = f.maze
	}
	if fl.Changed("order") {
		cfg.Order = f.order
	}
	if fl.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fl.Changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
}

func runMission(cmd *cobra.Command, cfg config.Config) error {
	l, err := loadLayout(cfg.Maze)
	if err != nil {
		return err
	}
	order, err := dfs.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}
	theme, ok := render.ThemeByName(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (want blocks or ascii)", cfg.Theme)
	}
	if cfg.NoColor {
		theme = render.Plain(theme)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Maze %q (%dx%d)\n", l.Name, l.Rows, l.Cols)

	sim := robot.NewSimulator(l)
	m := &solver.Mission{
		Robot:  sim,
		Start:  l.Start,
		Exit:   l.Exit,
		Rules:  l.Voids,
		Out:    out,
		Theme:  &theme,
		Logger: logger.L(),
		Order:  order,
	}
	rep, err := m.Run(cmd.Context())
	if err != nil {
		return err
	}
	odo := sim.Odometry()
	logger.L().Info("mission.odometry",
		"run_id", rep.RunID,
		"moves", odo.Moves,
		"turns", odo.Turns,
		"queries", odo.Queries,
	)

	return nil
}

func loadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.Default()
	}
	return layout.Load(path)
}
