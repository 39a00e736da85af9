package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vsinha/capplan/pkg/application/dto"
	"github.com/vsinha/capplan/pkg/domain/entities"
	csvrepo "github.com/vsinha/capplan/pkg/infrastructure/repositories/csv"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Out       io.Writer // defaults to stdout
}

// Generate renders the plan result in the specified format. The csv format
// requires an output directory; text and json also write the production
// table there when one is given.
func Generate(result *dto.PlanResult, config Config) error {
	if config.Out == nil {
		config.Out = os.Stdout
	}

	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates the human-readable report
func generateTextOutput(result *dto.PlanResult, config Config) error {
	w := config.Out

	fmt.Fprintf(w, "📊 Capacity Planning Summary\n")
	fmt.Fprintf(w, "============================\n\n")

	fmt.Fprintf(w, "Stages: %d\n", len(result.Chain))
	fmt.Fprintf(w, "Days Simulated: %d\n", result.TotalDays())
	fmt.Fprintf(w, "Total Unfulfilled Demand: %d units\n", result.TotalUnfulfilled())
	if config.Verbose {
		fmt.Fprintf(w, "Simulation Time: %v\n", result.Elapsed)
	}
	fmt.Fprintln(w)

	if config.Verbose {
		fmt.Fprintf(w, "🏭 Stage Capacities:\n")
		for _, stage := range result.Chain {
			fmt.Fprintf(w, "  %-20s %8d units/day\n", stage, result.Capacities[stage])
		}
		fmt.Fprintln(w)
	}

	if len(result.Saturated) > 0 {
		fmt.Fprintf(w, "🚨 Actual Bottlenecks:\n")
		printSummaryTable(w, result.Saturated)
	} else {
		fmt.Fprintf(w, "✅ No actual bottlenecks detected.\n")
	}
	fmt.Fprintln(w)

	if len(result.NearCapacity) > 0 {
		fmt.Fprintf(w, "⚠️  Potential Bottlenecks (warning zone):\n")
		printSummaryTable(w, result.NearCapacity)
		fmt.Fprintln(w)
	}

	printInsights(w, result)

	if config.OutputDir != "" {
		return writeTables(result, config.OutputDir)
	}
	return nil
}

func printSummaryTable(w io.Writer, summaries []entities.BottleneckSummary) {
	fmt.Fprintf(w, "  %-20s %8s %12s\n", "Stage", "Days", "% of Days")
	fmt.Fprintf(w, "  %-20s %8s %12s\n", "--------------------", "--------", "------------")
	for _, summary := range summaries {
		fmt.Fprintf(w, "  %-20s %8d %11s%%\n",
			summary.Stage, summary.Days, summary.Percent.StringFixed(1))
	}
}

// printInsights emits the rule-based recommendation lines. Which line a
// stage receives depends only on which tally it appears in.
func printInsights(w io.Writer, result *dto.PlanResult) {
	if len(result.Saturated) == 0 && len(result.NearCapacity) == 0 {
		fmt.Fprintf(w, "💡 All stages have sufficient capacity.\n")
		return
	}

	fmt.Fprintf(w, "💡 Recommendations:\n")
	for _, summary := range result.Saturated {
		fmt.Fprintf(w, "  - Increase capacity at %s to resolve the bottleneck (%d saturated days).\n",
			summary.Stage, summary.Days)
	}
	for _, summary := range result.NearCapacity {
		fmt.Fprintf(w, "  - Monitor %s closely to avoid future bottlenecks (%d near-capacity days).\n",
			summary.Stage, summary.Days)
	}
}

// jsonReport is the serializable view of a plan result
type jsonReport struct {
	Stages           []entities.StageName         `json:"stages"`
	TotalDays        int                          `json:"total_days"`
	TotalUnfulfilled entities.Quantity            `json:"total_unfulfilled"`
	Saturated        []entities.BottleneckSummary `json:"saturated"`
	NearCapacity     []entities.BottleneckSummary `json:"near_capacity"`
	Days             []jsonDay                    `json:"days"`
}

type jsonDay struct {
	Date           string            `json:"date"`
	Demand         entities.Quantity `json:"forecasted_demand"`
	FinalProcessed entities.Quantity `json:"processed_units"`
	Unfulfilled    entities.Quantity `json:"unfulfilled"`
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	report := jsonReport{
		Stages:           result.Chain,
		TotalDays:        result.TotalDays(),
		TotalUnfulfilled: result.TotalUnfulfilled(),
		Saturated:        result.Saturated,
		NearCapacity:     result.NearCapacity,
		Days:             make([]jsonDay, 0, len(result.Production)),
	}
	for _, record := range result.Production {
		report.Days = append(report.Days, jsonDay{
			Date:           record.Date.Format("2006-01-02"),
			Demand:         record.ForecastedDemand,
			FinalProcessed: record.FinalProcessed,
			Unfulfilled:    record.Unfulfilled(),
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(config.Out, string(data))

	if config.OutputDir != "" {
		return writeTables(result, config.OutputDir)
	}
	return nil
}

// generateCSVOutput writes the production, utilization and bottleneck
// tables into the output directory
func generateCSVOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("csv format requires an output directory")
	}
	if err := writeTables(result, config.OutputDir); err != nil {
		return err
	}

	writer := csvrepo.NewWriter()
	if err := writer.WriteBottlenecks(
		filepath.Join(config.OutputDir, "bottlenecks.csv"), result.Saturated,
	); err != nil {
		return err
	}
	if err := writer.WriteBottlenecks(
		filepath.Join(config.OutputDir, "near_capacity.csv"), result.NearCapacity,
	); err != nil {
		return err
	}

	fmt.Fprintf(config.Out, "Results written to %s\n", config.OutputDir)
	return nil
}

// writeTables persists the two time-series tables
func writeTables(result *dto.PlanResult, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	writer := csvrepo.NewWriter()
	if err := writer.WriteProduction(
		filepath.Join(dir, "production_data.csv"), result.Production, result.Chain,
	); err != nil {
		return err
	}
	return writer.WriteUtilization(
		filepath.Join(dir, "utilization.csv"), result.Utilization, result.Chain,
	)
}
