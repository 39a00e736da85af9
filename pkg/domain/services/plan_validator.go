package services

import (
	"fmt"

	"github.com/vsinha/capplan/pkg/domain/entities"
)

// PlanValidator provides validation for plan structure integrity
type PlanValidator struct{}

// NewPlanValidator creates a new plan validator
func NewPlanValidator() *PlanValidator {
	return &PlanValidator{}
}

// ValidationResult contains the results of plan validation
type ValidationResult struct {
	DuplicateStages    []entities.StageName
	MissingCapacities  []entities.StageName
	NegativeCapacities []entities.StageName
	OrphanedCapacities []entities.StageName
	Errors             []string
}

// Valid reports whether the plan passed all checks
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidatePlan performs comprehensive validation on a stage chain and its
// capacity map, collecting every problem rather than stopping at the first.
// The engine itself fails fast; this service exists so callers can surface
// all configuration mistakes in one pass.
func (v *PlanValidator) ValidatePlan(chain entities.StageChain, capacities entities.CapacityMap) *ValidationResult {
	result := &ValidationResult{
		DuplicateStages:    make([]entities.StageName, 0),
		MissingCapacities:  make([]entities.StageName, 0),
		NegativeCapacities: make([]entities.StageName, 0),
		OrphanedCapacities: make([]entities.StageName, 0),
		Errors:             make([]string, 0),
	}

	if len(chain) == 0 {
		result.Errors = append(result.Errors, entities.ErrEmptyChain.Error())
		return result
	}

	seen := make(map[entities.StageName]struct{}, len(chain))
	for _, stage := range chain {
		if stage == "" {
			result.Errors = append(result.Errors, "stage name cannot be empty")
			continue
		}
		if _, ok := seen[stage]; ok {
			result.DuplicateStages = append(result.DuplicateStages, stage)
			result.Errors = append(result.Errors, fmt.Sprintf("duplicate stage in chain: %s", stage))
			continue
		}
		seen[stage] = struct{}{}

		capacity, ok := capacities[stage]
		switch {
		case !ok:
			result.MissingCapacities = append(result.MissingCapacities, stage)
			result.Errors = append(result.Errors, fmt.Sprintf("capacity map missing entry for stage: %s", stage))
		case capacity < 0:
			result.NegativeCapacities = append(result.NegativeCapacities, stage)
			result.Errors = append(
				result.Errors,
				fmt.Sprintf("stage %s has negative capacity %d", stage, capacity),
			)
		}
	}

	// Capacity entries for stages outside the chain are most likely typos
	// in the plan file.
	for stage := range capacities {
		if !chain.Contains(stage) {
			result.OrphanedCapacities = append(result.OrphanedCapacities, stage)
			result.Errors = append(
				result.Errors,
				fmt.Sprintf("capacity entry for unknown stage: %s", stage),
			)
		}
	}

	return result
}
