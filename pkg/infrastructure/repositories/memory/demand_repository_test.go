package memory

import (
	"testing"
	"time"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

func demandOn(day int, quantity entities.Quantity) *entities.DemandRecord {
	return &entities.DemandRecord{
		Date:             time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		ForecastedDemand: quantity,
	}
}

func TestDemandRepository_LoadAndGet(t *testing.T) {
	repo := NewDemandRepository()

	err := repo.LoadDemands([]*entities.DemandRecord{
		demandOn(1, 100),
		demandOn(2, 200),
	})
	if err != nil {
		t.Fatalf("LoadDemands failed: %v", err)
	}

	demands, err := repo.GetDemands()
	if err != nil {
		t.Fatalf("GetDemands failed: %v", err)
	}
	if len(demands) != 2 {
		t.Fatalf("Expected 2 demands, got %d", len(demands))
	}
	if demands[1].ForecastedDemand != 200 {
		t.Errorf("Expected demand 200, got %d", demands[1].ForecastedDemand)
	}
}

func TestDemandRepository_AppendsKeepOrder(t *testing.T) {
	repo := NewDemandRepository()
	if err := repo.LoadDemands([]*entities.DemandRecord{demandOn(1, 100)}); err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	if err := repo.LoadDemands([]*entities.DemandRecord{demandOn(2, 200)}); err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	// Appending a date before the stored range breaks the series contract.
	if err := repo.LoadDemands([]*entities.DemandRecord{demandOn(1, 50)}); err == nil {
		t.Error("Expected error when appended dates overlap the stored range")
	}

	demands, err := repo.GetDemands()
	if err != nil {
		t.Fatalf("GetDemands failed: %v", err)
	}
	if len(demands) != 2 {
		t.Errorf("Expected rejected load to leave repository unchanged, got %d records", len(demands))
	}
}

func TestDemandRepository_RejectsInvalidSeries(t *testing.T) {
	repo := NewDemandRepository()
	err := repo.LoadDemands([]*entities.DemandRecord{
		demandOn(2, 100),
		demandOn(1, 100),
	})
	if err == nil {
		t.Error("Expected error for unsorted series")
	}
}
