package entities

import (
	"errors"
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestNewDemandRecord(t *testing.T) {
	record, err := NewDemandRecord(date(1), 500)
	if err != nil {
		t.Fatalf("Expected valid record creation to succeed: %v", err)
	}
	if record.ForecastedDemand != 500 {
		t.Errorf("Expected demand 500, got %d", record.ForecastedDemand)
	}

	if _, err := NewDemandRecord(date(1), -1); !errors.Is(err, ErrNegativeDemand) {
		t.Errorf("Expected ErrNegativeDemand, got %v", err)
	}

	if _, err := NewDemandRecord(time.Time{}, 500); err == nil {
		t.Error("Expected error for zero date")
	}
}

func TestValidateDemandSeries(t *testing.T) {
	testCases := []struct {
		name    string
		records []DemandRecord
		wantErr error
	}{
		{
			"empty series",
			nil,
			nil,
		},
		{
			"sorted series",
			[]DemandRecord{
				{Date: date(1), ForecastedDemand: 100},
				{Date: date(2), ForecastedDemand: 200},
				{Date: date(3), ForecastedDemand: 0},
			},
			nil,
		},
		{
			"duplicate date",
			[]DemandRecord{
				{Date: date(1), ForecastedDemand: 100},
				{Date: date(1), ForecastedDemand: 200},
			},
			ErrDuplicateDate,
		},
		{
			"out of order",
			[]DemandRecord{
				{Date: date(2), ForecastedDemand: 100},
				{Date: date(1), ForecastedDemand: 200},
			},
			ErrUnsortedDemand,
		},
		{
			"negative demand",
			[]DemandRecord{
				{Date: date(1), ForecastedDemand: -5},
			},
			ErrNegativeDemand,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDemandSeries(tc.records)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected valid series: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
