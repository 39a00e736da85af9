package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord holds the units cleared by each stage on one date.
// Produced solely by the flow simulator; immutable once computed.
type ProductionRecord struct {
	Date             time.Time
	ForecastedDemand Quantity
	Processed        map[StageName]Quantity
	FinalProcessed   Quantity
}

// Unfulfilled returns the demand the chain failed to clear on this date.
// Unmet demand is lost, never queued to the next day.
func (r ProductionRecord) Unfulfilled() Quantity {
	return r.ForecastedDemand - r.FinalProcessed
}

// UtilizationRecord holds per-stage utilization ratios for one date.
// Ratios are unclamped; values at or above 1.0 are valid and meaningful.
// A zero-capacity stage reports exactly zero utilization.
type UtilizationRecord struct {
	Date        time.Time
	Utilization map[StageName]decimal.Decimal
}

// BottleneckSummary tallies qualifying days for one stage over the full
// date range. Percent is of total days, rounded to one decimal place.
type BottleneckSummary struct {
	Stage   StageName       `json:"stage"`
	Days    int             `json:"days"`
	Percent decimal.Decimal `json:"percent"`
}
