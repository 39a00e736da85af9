package entities

import "fmt"

// StageName identifies one step in the manufacturing chain
type StageName string

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// StageChain is the ordered production sequence; the output of stage i feeds
// stage i+1
type StageChain []StageName

// NewStageChain creates a validated StageChain
func NewStageChain(names ...StageName) (StageChain, error) {
	chain := StageChain(names)
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

// Validate checks the chain invariants: non-empty, no blank names, no duplicates
func (c StageChain) Validate() error {
	if len(c) == 0 {
		return ErrEmptyChain
	}
	seen := make(map[StageName]struct{}, len(c))
	for i, name := range c {
		if name == "" {
			return fmt.Errorf("stage %d: stage name cannot be empty", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateStage, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Contains reports whether the chain includes the given stage
func (c StageChain) Contains(name StageName) bool {
	for _, s := range c {
		if s == name {
			return true
		}
	}
	return false
}

// CapacityMap maps each stage to its daily nameplate capacity in units/day.
// A zero capacity models a fully blocked stage and is valid.
type CapacityMap map[StageName]Quantity

// NewCapacityMap creates a CapacityMap validated against the given chain
func NewCapacityMap(chain StageChain, capacities map[StageName]Quantity) (CapacityMap, error) {
	m := CapacityMap(capacities)
	if err := m.ValidateFor(chain); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateFor checks that every stage in the chain has exactly one
// non-negative capacity entry
func (m CapacityMap) ValidateFor(chain StageChain) error {
	for _, stage := range chain {
		capacity, ok := m[stage]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingCapacity, stage)
		}
		if capacity < 0 {
			return fmt.Errorf("%w: %s has capacity %d", ErrNegativeCapacity, stage, capacity)
		}
	}
	return nil
}

// Clone returns an independent copy of the capacity map
func (m CapacityMap) Clone() CapacityMap {
	clone := make(CapacityMap, len(m))
	for stage, capacity := range m {
		clone[stage] = capacity
	}
	return clone
}
