package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Loader handles loading demand forecast data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDemands loads the demand forecast series from a CSV file. The file
// must carry a `date` and a `forecasted_demand` column; extra columns are
// ignored. The series is validated against the input contract (ascending
// dates, no duplicates, non-negative demand) before it is returned.
func (l *Loader) LoadDemands(filename string) ([]*entities.DemandRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open demand file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read demand CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("demand CSV must have header and at least one data row")
	}

	dateCol, demandCol, err := locateColumns(records[0])
	if err != nil {
		return nil, err
	}

	demands := make([]*entities.DemandRecord, 0, len(records)-1)
	series := make([]entities.DemandRecord, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(records[0]) {
			return nil, fmt.Errorf(
				"demand CSV row %d: expected %d columns, got %d",
				i+2, len(records[0]), len(record),
			)
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf(
				"demand CSV row %d: invalid date %q (expected YYYY-MM-DD)",
				i+2, record[dateCol],
			)
		}

		quantity, err := strconv.ParseInt(strings.TrimSpace(record[demandCol]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"demand CSV row %d: invalid forecasted_demand %q",
				i+2, record[demandCol],
			)
		}

		demand, err := entities.NewDemandRecord(date, entities.Quantity(quantity))
		if err != nil {
			return nil, fmt.Errorf("demand CSV row %d: %w", i+2, err)
		}

		demands = append(demands, demand)
		series = append(series, *demand)
	}

	if err := entities.ValidateDemandSeries(series); err != nil {
		return nil, fmt.Errorf("demand CSV: %w", err)
	}

	return demands, nil
}

// locateColumns finds the date and forecasted_demand columns in the header.
// The contract requires at minimum those two fields; their position does
// not matter.
func locateColumns(header []string) (dateCol, demandCol int, err error) {
	dateCol, demandCol = -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "date":
			dateCol = i
		case "forecasted_demand":
			demandCol = i
		}
	}
	if dateCol < 0 {
		return 0, 0, fmt.Errorf("demand CSV header missing date column. Got: %v", header)
	}
	if demandCol < 0 {
		return 0, 0, fmt.Errorf("demand CSV header missing forecasted_demand column. Got: %v", header)
	}
	return dateCol, demandCol, nil
}
