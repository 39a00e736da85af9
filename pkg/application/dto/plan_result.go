package dto

import (
	"time"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// PlanResult contains the complete output of one simulation run
type PlanResult struct {
	Chain        entities.StageChain
	Capacities   entities.CapacityMap
	Production   []entities.ProductionRecord
	Utilization  []entities.UtilizationRecord
	Saturated    []entities.BottleneckSummary
	NearCapacity []entities.BottleneckSummary
	Elapsed      time.Duration
}

// TotalDays returns the number of dates in the simulated range
func (r *PlanResult) TotalDays() int {
	return len(r.Production)
}

// TotalUnfulfilled sums the demand lost across the full date range
func (r *PlanResult) TotalUnfulfilled() entities.Quantity {
	var total entities.Quantity
	for _, record := range r.Production {
		total += record.Unfulfilled()
	}
	return total
}
