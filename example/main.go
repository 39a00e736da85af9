package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/capplan/pkg/application/services"
	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/infrastructure/config"
	"github.com/vsinha/capplan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Built-in fab chain: Deposition through Metrology
	plan := config.DefaultPlan()

	// A two-week forecast ramping past the tightest stage capacities
	demandRepo := memory.NewDemandRepository()
	if err := demandRepo.LoadDemands(buildForecast()); err != nil {
		fmt.Printf("❌ invalid forecast: %v\n", err)
		return
	}

	fmt.Println("🏭 Running capacity plan for semiconductor fab...")
	fmt.Printf("Chain: %v\n\n", plan.Chain)

	service := services.NewPlanningService()
	result, err := service.Plan(ctx, demandRepo, plan.Chain, plan.Capacities)
	if err != nil {
		fmt.Printf("❌ planning failed: %v\n", err)
		return
	}

	fmt.Println("📊 Results:")
	fmt.Printf("  Days Simulated: %d\n", result.TotalDays())
	fmt.Printf("  Unfulfilled Demand: %d units\n", result.TotalUnfulfilled())
	fmt.Printf("  Saturated Stages: %d\n", len(result.Saturated))
	fmt.Printf("  Near-Capacity Stages: %d\n", len(result.NearCapacity))
	fmt.Println()

	for _, summary := range result.Saturated {
		fmt.Printf("  🚨 %s saturated on %d days (%s%% of range)\n",
			summary.Stage, summary.Days, summary.Percent.StringFixed(1))
	}
	for _, summary := range result.NearCapacity {
		fmt.Printf("  ⚠️  %s near capacity on %d days (%s%% of range)\n",
			summary.Stage, summary.Days, summary.Percent.StringFixed(1))
	}
}

// buildForecast generates 14 days of demand ramping from 18k to 24.5k
// units/day, enough to saturate CMP (21k) and Doping (21.5k) on the later
// days.
func buildForecast() []*entities.DemandRecord {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var records []*entities.DemandRecord
	for day := 0; day < 14; day++ {
		record, err := entities.NewDemandRecord(
			start.AddDate(0, 0, day),
			entities.Quantity(18_000+int64(day)*500),
		)
		if err != nil {
			panic(err)
		}
		records = append(records, record)
	}
	return records
}
