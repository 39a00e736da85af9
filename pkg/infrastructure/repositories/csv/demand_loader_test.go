package csv

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demand.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadDemands(t *testing.T) {
	path := writeTempCSV(t, "date,forecasted_demand\n2025-01-01,20000\n2025-01-02,21500\n")

	demands, err := NewLoader().LoadDemands(path)
	if err != nil {
		t.Fatalf("LoadDemands failed: %v", err)
	}
	if len(demands) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(demands))
	}
	if demands[0].ForecastedDemand != 20000 {
		t.Errorf("Expected demand 20000, got %d", demands[0].ForecastedDemand)
	}
	if got := demands[1].Date.Format("2006-01-02"); got != "2025-01-02" {
		t.Errorf("Expected date 2025-01-02, got %s", got)
	}
}

func TestLoadDemands_ExtraColumnsIgnored(t *testing.T) {
	path := writeTempCSV(t, "region,forecasted_demand,date\nwest,500,2025-01-01\n")

	demands, err := NewLoader().LoadDemands(path)
	if err != nil {
		t.Fatalf("LoadDemands failed: %v", err)
	}
	if len(demands) != 1 || demands[0].ForecastedDemand != 500 {
		t.Errorf("Expected single record with demand 500, got %+v", demands)
	}
}

func TestLoadDemands_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing demand column", "date,volume\n2025-01-01,100\n"},
		{"missing date column", "day,forecasted_demand\n2025-01-01,100\n"},
		{"header only", "date,forecasted_demand\n"},
		{"bad date format", "date,forecasted_demand\n01/02/2025,100\n"},
		{"non-numeric demand", "date,forecasted_demand\n2025-01-01,lots\n"},
		{"negative demand", "date,forecasted_demand\n2025-01-01,-100\n"},
		{"duplicate dates", "date,forecasted_demand\n2025-01-01,100\n2025-01-01,200\n"},
		{"unsorted dates", "date,forecasted_demand\n2025-01-02,100\n2025-01-01,200\n"},
		{"ragged row", "date,forecasted_demand\n2025-01-01\n"},
	}

	loader := NewLoader()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, tc.content)
			if _, err := loader.LoadDemands(path); err == nil {
				t.Errorf("Expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadDemands_MissingFile(t *testing.T) {
	if _, err := NewLoader().LoadDemands(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
