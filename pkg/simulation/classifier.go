package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// Default classification thresholds. A stage-day at or above the saturated
// threshold is an actual bottleneck; the band between the two is the
// warning zone.
var (
	DefaultSaturatedThreshold    = decimal.NewFromInt(1)
	DefaultNearCapacityThreshold = decimal.NewFromFloat(0.85)
)

// Classifier tallies saturated and near-capacity days per stage from a
// utilization series.
type Classifier struct {
	saturated    decimal.Decimal
	nearCapacity decimal.Decimal
}

// NewClassifier creates a classifier with the default thresholds
// (saturated at 1.0, near-capacity at 0.85).
func NewClassifier() *Classifier {
	return &Classifier{
		saturated:    DefaultSaturatedThreshold,
		nearCapacity: DefaultNearCapacityThreshold,
	}
}

// NewClassifierWithThresholds creates a classifier with custom thresholds.
// The near-capacity threshold must be positive and strictly below the
// saturated threshold.
func NewClassifierWithThresholds(saturated, nearCapacity decimal.Decimal) (*Classifier, error) {
	if nearCapacity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("near-capacity threshold must be positive, got %s", nearCapacity)
	}
	if nearCapacity.GreaterThanOrEqual(saturated) {
		return nil, fmt.Errorf(
			"near-capacity threshold %s must be below saturated threshold %s",
			nearCapacity, saturated,
		)
	}
	return &Classifier{saturated: saturated, nearCapacity: nearCapacity}, nil
}

// Classify scans the utilization series and returns one summary per stage
// with at least one saturated day, and one per stage with at least one
// near-capacity day. Stages with zero qualifying days are omitted, which is
// what lets callers distinguish "no bottlenecks" from "zero-count rows".
//
// The two classes are mutually exclusive per stage-day: a saturated day is
// never also counted as near-capacity. Summaries follow chain order.
func (c *Classifier) Classify(
	utilization []entities.UtilizationRecord,
	chain entities.StageChain,
) (saturated, nearCapacity []entities.BottleneckSummary, err error) {
	if err := chain.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid stage chain: %w", err)
	}

	totalDays := len(utilization)
	if totalDays == 0 {
		return nil, nil, nil
	}

	saturatedDays := make(map[entities.StageName]int, len(chain))
	nearCapacityDays := make(map[entities.StageName]int, len(chain))

	for _, record := range utilization {
		for _, stage := range chain {
			ratio, ok := record.Utilization[stage]
			if !ok {
				return nil, nil, fmt.Errorf(
					"utilization record for %s missing stage %s",
					record.Date.Format("2006-01-02"), stage,
				)
			}
			switch {
			case ratio.GreaterThanOrEqual(c.saturated):
				saturatedDays[stage]++
			case ratio.GreaterThanOrEqual(c.nearCapacity):
				nearCapacityDays[stage]++
			}
		}
	}

	total := decimal.NewFromInt(int64(totalDays))
	for _, stage := range chain {
		if days := saturatedDays[stage]; days > 0 {
			saturated = append(saturated, entities.BottleneckSummary{
				Stage:   stage,
				Days:    days,
				Percent: percentOfDays(days, total),
			})
		}
		if days := nearCapacityDays[stage]; days > 0 {
			nearCapacity = append(nearCapacity, entities.BottleneckSummary{
				Stage:   stage,
				Days:    days,
				Percent: percentOfDays(days, total),
			})
		}
	}

	return saturated, nearCapacity, nil
}

// percentOfDays computes days/total*100 rounded to one decimal place.
func percentOfDays(days int, total decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(days) * 100).DivRound(total, 1)
}
