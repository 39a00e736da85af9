// Package commands wires the CLI surface: simulate once, sweep a capacity
// range, or watch a plan file and re-run on every change.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsinha/capplan/pkg/application/services"
	"github.com/vsinha/capplan/pkg/infrastructure/config"
	"github.com/vsinha/capplan/pkg/simulation"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "capplan",
	Short: "Production flow capacity planner",
	Long: `Simulates sequential production flow through a fixed chain of
manufacturing stages, each with a configurable daily capacity, and reports
per-stage utilization and bottlenecks over a demand forecast.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadPlan loads the plan file, falling back to the built-in default chain
// when no path is given.
func loadPlan(path string) (*config.Plan, error) {
	if path == "" {
		logger.Debug().Msg("no plan file given, using built-in default plan")
		return config.DefaultPlan(), nil
	}
	plan, err := config.LoadPlan(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("plan", path).Int("stages", len(plan.Chain)).Msg("plan loaded")
	return plan, nil
}

// newPlanningService builds a planning service honoring any threshold
// overrides from the plan file.
func newPlanningService(plan *config.Plan) (*services.PlanningService, error) {
	if !plan.HasThresholds {
		return services.NewPlanningService(), nil
	}
	classifier, err := simulation.NewClassifierWithThresholds(
		plan.SaturatedThreshold, plan.NearCapacityThreshold,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid thresholds in plan: %w", err)
	}
	return services.NewPlanningServiceWithClassifier(classifier), nil
}
