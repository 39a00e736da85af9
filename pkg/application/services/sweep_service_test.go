package services

import (
	"context"
	"testing"

	"github.com/vsinha/capplan/pkg/domain/entities"
	testhelpers "github.com/vsinha/capplan/pkg/infrastructure/testing"
)

func TestSweepService_SaturationRecedesWithCapacity(t *testing.T) {
	chain := entities.StageChain{"A"}
	capacities := entities.CapacityMap{"A": 100}
	demand := testhelpers.BuildDemandSeries(80, 120, 160)

	sweeper := NewSweepService(NewPlanningService())
	points, err := sweeper.Sweep(
		context.Background(), demand, chain, capacities, "A", 80, 200, 40)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("Expected 4 points (80,120,160,200), got %d", len(points))
	}
	for i, point := range points {
		if point.Capacity != entities.Quantity(80+i*40) {
			t.Errorf("Point %d: expected capacity %d, got %d", i, 80+i*40, point.Capacity)
		}
	}

	// At 80 every day saturates; at 200 none do and nothing is lost.
	if points[0].SaturatedDays != 3 {
		t.Errorf("Expected 3 saturated days at capacity 80, got %d", points[0].SaturatedDays)
	}
	if points[3].SaturatedDays != 0 {
		t.Errorf("Expected 0 saturated days at capacity 200, got %d", points[3].SaturatedDays)
	}
	if points[3].TotalUnfulfilled != 0 {
		t.Errorf("Expected no unfulfilled demand at capacity 200, got %d",
			points[3].TotalUnfulfilled)
	}

	for i := 1; i < len(points); i++ {
		if points[i].SaturatedDays > points[i-1].SaturatedDays {
			t.Errorf("Saturated days increased from %d to %d as capacity grew",
				points[i-1].SaturatedDays, points[i].SaturatedDays)
		}
		if points[i].TotalUnfulfilled > points[i-1].TotalUnfulfilled {
			t.Errorf("Unfulfilled demand increased from %d to %d as capacity grew",
				points[i-1].TotalUnfulfilled, points[i].TotalUnfulfilled)
		}
	}
}

func TestSweepService_LeavesBaseCapacitiesUntouched(t *testing.T) {
	chain := entities.StageChain{"A", "B"}
	capacities := entities.CapacityMap{"A": 100, "B": 80}
	demand := testhelpers.BuildDemandSeries(90)

	sweeper := NewSweepService(NewPlanningService())
	if _, err := sweeper.Sweep(
		context.Background(), demand, chain, capacities, "B", 50, 150, 50); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if capacities["B"] != 80 {
		t.Errorf("Expected base capacity map untouched, got B=%d", capacities["B"])
	}
}

func TestSweepService_InvalidRanges(t *testing.T) {
	chain := entities.StageChain{"A"}
	capacities := entities.CapacityMap{"A": 100}
	demand := testhelpers.BuildDemandSeries(90)
	sweeper := NewSweepService(NewPlanningService())

	testCases := []struct {
		name           string
		stage          entities.StageName
		from, to, step entities.Quantity
	}{
		{"unknown stage", "X", 0, 100, 50},
		{"negative start", "A", -50, 100, 50},
		{"zero step", "A", 0, 100, 0},
		{"empty range", "A", 200, 100, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sweeper.Sweep(
				context.Background(), demand, chain, capacities,
				tc.stage, tc.from, tc.to, tc.step)
			if err == nil {
				t.Fatalf("Expected error for %s", tc.name)
			}
		})
	}
}
