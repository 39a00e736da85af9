package entities

import (
	"fmt"
	"time"
)

// DemandRecord represents forecasted demand for a single calendar date
type DemandRecord struct {
	Date             time.Time
	ForecastedDemand Quantity
}

// NewDemandRecord creates a validated DemandRecord
func NewDemandRecord(date time.Time, forecastedDemand Quantity) (*DemandRecord, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("demand date cannot be zero")
	}
	if forecastedDemand < 0 {
		return nil, fmt.Errorf("%w: %d on %s", ErrNegativeDemand, forecastedDemand, date.Format("2006-01-02"))
	}
	return &DemandRecord{
		Date:             date,
		ForecastedDemand: forecastedDemand,
	}, nil
}

// ValidateDemandSeries checks the series contract: non-negative quantities,
// dates strictly ascending, no duplicates. The engine never re-sorts; an
// out-of-order series is rejected wholesale.
func ValidateDemandSeries(records []DemandRecord) error {
	for i, record := range records {
		if record.ForecastedDemand < 0 {
			return fmt.Errorf("record %d: %w: %d", i, ErrNegativeDemand, record.ForecastedDemand)
		}
		if i == 0 {
			continue
		}
		prev := records[i-1].Date
		switch {
		case record.Date.Equal(prev):
			return fmt.Errorf("record %d: %w: %s", i, ErrDuplicateDate, record.Date.Format("2006-01-02"))
		case record.Date.Before(prev):
			return fmt.Errorf("record %d: %w: %s before %s",
				i, ErrUnsortedDemand, record.Date.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
	}
	return nil
}
