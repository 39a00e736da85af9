package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/capplan/pkg/application/services"
	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/infrastructure/repositories/csv"
)

var (
	sweepPlanPath   string
	sweepDemandPath string
	sweepStage      string
	sweepFrom       int64
	sweepTo         int64
	sweepStep       int64
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a range of capacity values for one stage",
	Long: `Re-runs the full simulation once per capacity value in the range,
varying only the given stage. Configurations are independent and run
concurrently.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().
		StringVar(&sweepPlanPath, "plan", "", "path to TOML plan file (default: built-in fab chain)")
	sweepCmd.Flags().
		StringVar(&sweepDemandPath, "demand", "", "path to demand forecast CSV")
	sweepCmd.Flags().StringVar(&sweepStage, "stage", "", "stage whose capacity to sweep")
	sweepCmd.Flags().Int64Var(&sweepFrom, "from", 0, "first capacity value")
	sweepCmd.Flags().Int64Var(&sweepTo, "to", 0, "last capacity value (inclusive)")
	sweepCmd.Flags().Int64Var(&sweepStep, "step", 500, "capacity increment")
	_ = sweepCmd.MarkFlagRequired("demand")
	_ = sweepCmd.MarkFlagRequired("stage")
	_ = sweepCmd.MarkFlagRequired("from")
	_ = sweepCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(sweepPlanPath)
	if err != nil {
		return err
	}

	planning, err := newPlanningService(plan)
	if err != nil {
		return err
	}

	loader := csv.NewLoader()
	demandPtrs, err := loader.LoadDemands(sweepDemandPath)
	if err != nil {
		return fmt.Errorf("error loading demand forecast: %w", err)
	}
	demand := make([]entities.DemandRecord, len(demandPtrs))
	for i, record := range demandPtrs {
		demand[i] = *record
	}

	sweeper := services.NewSweepService(planning)
	points, err := sweeper.Sweep(
		cmd.Context(),
		demand,
		plan.Chain,
		plan.Capacities,
		entities.StageName(sweepStage),
		entities.Quantity(sweepFrom),
		entities.Quantity(sweepTo),
		entities.Quantity(sweepStep),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📈 Capacity Sweep: %s (%d days of demand)\n\n", sweepStage, len(demand))
	fmt.Fprintf(out, "%-12s %-15s %-20s %-12s\n",
		"Capacity", "Saturated Days", "Near-Capacity Days", "Unfulfilled")
	fmt.Fprintf(out, "%-12s %-15s %-20s %-12s\n",
		"------------", "---------------", "--------------------", "------------")
	for _, point := range points {
		fmt.Fprintf(out, "%-12d %-15d %-20d %-12d\n",
			point.Capacity, point.SaturatedDays, point.NearCapacityDays, point.TotalUnfulfilled)
	}
	return nil
}
