package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/capplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/capplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/capplan/pkg/interfaces/cli/output"
)

var (
	simulatePlanPath   string
	simulateDemandPath string
	simulateOutputDir  string
	simulateFormat     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the flow simulation once and report bottlenecks",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().
		StringVar(&simulatePlanPath, "plan", "", "path to TOML plan file (default: built-in fab chain)")
	simulateCmd.Flags().
		StringVar(&simulateDemandPath, "demand", "", "path to demand forecast CSV")
	simulateCmd.Flags().
		StringVarP(&simulateOutputDir, "output", "o", "", "directory for CSV table output (optional)")
	simulateCmd.Flags().
		StringVarP(&simulateFormat, "format", "f", "text", "output format: text, json, csv")
	_ = simulateCmd.MarkFlagRequired("demand")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(simulatePlanPath)
	if err != nil {
		return err
	}

	service, err := newPlanningService(plan)
	if err != nil {
		return err
	}

	loader := csv.NewLoader()
	demands, err := loader.LoadDemands(simulateDemandPath)
	if err != nil {
		return fmt.Errorf("error loading demand forecast: %w", err)
	}
	logger.Debug().Int("records", len(demands)).Msg("demand forecast loaded")

	demandRepo := memory.NewDemandRepository()
	if err := demandRepo.LoadDemands(demands); err != nil {
		return fmt.Errorf("failed to load demands into repository: %w", err)
	}

	result, err := service.Plan(cmd.Context(), demandRepo, plan.Chain, plan.Capacities)
	if err != nil {
		return err
	}
	logger.Debug().
		Dur("elapsed", result.Elapsed).
		Int("saturated_stages", len(result.Saturated)).
		Int("near_capacity_stages", len(result.NearCapacity)).
		Msg("simulation complete")

	return output.Generate(result, output.Config{
		Format:    simulateFormat,
		OutputDir: simulateOutputDir,
		Verbose:   verbose,
		Out:       cmd.OutOrStdout(),
	})
}
