package entities

import (
	"errors"
	"testing"
)

func TestStageChain_Validation(t *testing.T) {
	chain, err := NewStageChain("Deposition", "Etching", "Metrology")
	if err != nil {
		t.Fatalf("Expected valid chain creation to succeed: %v", err)
	}
	if len(chain) != 3 {
		t.Errorf("Expected 3 stages, got %d", len(chain))
	}

	testCases := []struct {
		name    string
		stages  []StageName
		wantErr error
	}{
		{"empty chain", nil, ErrEmptyChain},
		{"duplicate stage", []StageName{"A", "B", "A"}, ErrDuplicateStage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStageChain(tc.stages...)
			if err == nil {
				t.Fatalf("Expected error for %s", tc.name)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := NewStageChain("A", "", "B"); err == nil {
		t.Error("Expected error for blank stage name")
	}
}

func TestStageChain_Contains(t *testing.T) {
	chain := StageChain{"A", "B"}
	if !chain.Contains("A") {
		t.Error("Expected chain to contain A")
	}
	if chain.Contains("C") {
		t.Error("Expected chain not to contain C")
	}
}

func TestCapacityMap_ValidateFor(t *testing.T) {
	chain := StageChain{"A", "B"}

	testCases := []struct {
		name       string
		capacities map[StageName]Quantity
		wantErr    error
	}{
		{"complete map", map[StageName]Quantity{"A": 100, "B": 80}, nil},
		{"zero capacity is valid", map[StageName]Quantity{"A": 0, "B": 80}, nil},
		{"missing entry", map[StageName]Quantity{"A": 100}, ErrMissingCapacity},
		{"negative capacity", map[StageName]Quantity{"A": 100, "B": -1}, ErrNegativeCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCapacityMap(chain, tc.capacities)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected valid capacity map: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCapacityMap_Clone(t *testing.T) {
	original := CapacityMap{"A": 100}
	clone := original.Clone()
	clone["A"] = 50

	if original["A"] != 100 {
		t.Errorf("Expected clone mutation not to affect original, got %d", original["A"])
	}
}
