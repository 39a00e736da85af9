package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// SweepPoint holds the outcome of simulating one capacity value for the
// swept stage.
type SweepPoint struct {
	Capacity         entities.Quantity
	SaturatedDays    int
	NearCapacityDays int
	TotalUnfulfilled entities.Quantity
}

// SweepService evaluates a range of capacity values for a single stage.
// Each configuration is an independent invocation with no shared mutable
// state, so the points run concurrently.
type SweepService struct {
	planning *PlanningService
}

// NewSweepService creates a sweep service backed by the given planning
// service
func NewSweepService(planning *PlanningService) *SweepService {
	return &SweepService{planning: planning}
}

// Sweep simulates the demand series once per capacity value in
// [from, to] stepping by step, varying only the given stage. Results are
// returned in ascending capacity order regardless of completion order.
func (s *SweepService) Sweep(
	ctx context.Context,
	demand []entities.DemandRecord,
	chain entities.StageChain,
	capacities entities.CapacityMap,
	stage entities.StageName,
	from, to, step entities.Quantity,
) ([]SweepPoint, error) {
	if !chain.Contains(stage) {
		return nil, fmt.Errorf("sweep stage %s is not in the chain", stage)
	}
	if from < 0 {
		return nil, fmt.Errorf("%w: sweep start %d", entities.ErrNegativeCapacity, from)
	}
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %d", step)
	}
	if to < from {
		return nil, fmt.Errorf("sweep range is empty: %d..%d", from, to)
	}

	var values []entities.Quantity
	for capacity := from; capacity <= to; capacity += step {
		values = append(values, capacity)
	}

	points := make([]SweepPoint, len(values))
	errs := make([]error, len(values))

	var wg sync.WaitGroup
	for i, capacity := range values {
		wg.Add(1)
		go func(i int, capacity entities.Quantity) {
			defer wg.Done()

			trial := capacities.Clone()
			trial[stage] = capacity

			result, err := s.planning.PlanSeries(ctx, demand, chain, trial)
			if err != nil {
				errs[i] = fmt.Errorf("capacity %d: %w", capacity, err)
				return
			}

			point := SweepPoint{
				Capacity:         capacity,
				TotalUnfulfilled: result.TotalUnfulfilled(),
			}
			for _, summary := range result.Saturated {
				if summary.Stage == stage {
					point.SaturatedDays = summary.Days
				}
			}
			for _, summary := range result.NearCapacity {
				if summary.Stage == stage {
					point.NearCapacityDays = summary.Days
				}
			}
			points[i] = point
		}(i, capacity)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}
