// Package simulation implements the production flow engine: it pushes a
// daily demand forecast through an ordered chain of capacity-limited stages
// and classifies each stage's utilization against bottleneck thresholds.
//
// The engine is a pure function of its inputs. It performs no I/O, holds no
// state between runs, and is safe to invoke concurrently with independent
// inputs.
package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// Simulator computes per-stage flow and utilization for a demand series.
//
// Each date is evaluated independently: there is no inventory carry-over
// between days. Demand a stage cannot clear is lost, not queued; it shows
// up as unfulfilled demand on that date's ProductionRecord.
type Simulator struct{}

// NewSimulator creates a new flow simulator
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Simulate pushes each day's forecasted demand through the stage chain.
//
// Units entering the first stage equal that day's forecasted demand; units
// entering stage i equal the units processed by stage i-1 the same day.
// A stage processes min(entering units, capacity). Utilization is processed
// units divided by capacity; for a zero-capacity stage it is defined as
// exactly zero (zero throughput against zero nameplate is not "over
// capacity").
//
// The output slices contain exactly one record per input record, in input
// order. All input-contract violations are rejected before any computation;
// no partial results are returned.
func (s *Simulator) Simulate(
	demand []entities.DemandRecord,
	chain entities.StageChain,
	capacities entities.CapacityMap,
) ([]entities.ProductionRecord, []entities.UtilizationRecord, error) {
	if err := chain.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid stage chain: %w", err)
	}
	if err := capacities.ValidateFor(chain); err != nil {
		return nil, nil, fmt.Errorf("invalid capacity map: %w", err)
	}
	if err := entities.ValidateDemandSeries(demand); err != nil {
		return nil, nil, fmt.Errorf("invalid demand series: %w", err)
	}

	production := make([]entities.ProductionRecord, 0, len(demand))
	utilization := make([]entities.UtilizationRecord, 0, len(demand))

	for _, day := range demand {
		processed := make(map[entities.StageName]entities.Quantity, len(chain))
		ratios := make(map[entities.StageName]decimal.Decimal, len(chain))

		entering := day.ForecastedDemand
		for _, stage := range chain {
			capacity := capacities[stage]

			cleared := entering
			if cleared > capacity {
				cleared = capacity
			}
			processed[stage] = cleared
			ratios[stage] = utilizationRatio(cleared, capacity)

			// Output of this stage feeds the next one.
			entering = cleared
		}

		production = append(production, entities.ProductionRecord{
			Date:             day.Date,
			ForecastedDemand: day.ForecastedDemand,
			Processed:        processed,
			FinalProcessed:   entering,
		})
		utilization = append(utilization, entities.UtilizationRecord{
			Date:        day.Date,
			Utilization: ratios,
		})
	}

	return production, utilization, nil
}

// utilizationRatio divides processed units by capacity. Zero capacity yields
// exactly zero rather than a division fault.
func utilizationRatio(processed, capacity entities.Quantity) decimal.Decimal {
	if capacity == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(processed)).Div(decimal.NewFromInt(int64(capacity)))
}
