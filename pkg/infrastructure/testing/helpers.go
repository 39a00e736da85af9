package testing

import (
	"time"

	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/infrastructure/repositories/memory"
)

// SeriesStart is the first date used by the generated test forecasts
var SeriesStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Day returns SeriesStart offset by n days
func Day(n int) time.Time {
	return SeriesStart.AddDate(0, 0, n)
}

// BuildDemandSeries turns a list of daily quantities into consecutive-date
// demand records starting at SeriesStart
func BuildDemandSeries(quantities ...entities.Quantity) []entities.DemandRecord {
	records := make([]entities.DemandRecord, 0, len(quantities))
	for i, quantity := range quantities {
		records = append(records, entities.DemandRecord{
			Date:             Day(i),
			ForecastedDemand: quantity,
		})
	}
	return records
}

// BuildDemandRepository loads the given daily quantities into an in-memory
// demand repository
func BuildDemandRepository(quantities ...entities.Quantity) *memory.DemandRepository {
	repo := memory.NewDemandRepository()
	series := BuildDemandSeries(quantities...)
	demands := make([]*entities.DemandRecord, len(series))
	for i := range series {
		demands[i] = &series[i]
	}
	if err := repo.LoadDemands(demands); err != nil {
		panic(err)
	}
	return repo
}

// BuildFabTestData builds the two-stage mill scenario used across the
// engine tests: stage A capped at 100 units/day feeding stage B capped
// at 80.
func BuildFabTestData() (entities.StageChain, entities.CapacityMap) {
	chain := entities.StageChain{"A", "B"}
	capacities := entities.CapacityMap{"A": 100, "B": 80}
	return chain, capacities
}
