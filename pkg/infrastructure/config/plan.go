// Package config loads plan files: the stage chain, per-stage daily
// capacities, and optional classification thresholds, stored as TOML.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/domain/services"
)

// MaxStageCapacity bounds plan-file capacities to the same sane range the
// reference capacity sliders used. The core engine itself accepts any
// non-negative value; this bound is caller-side validation only.
const MaxStageCapacity = 50_000

// Plan is the validated configuration consumed by the planning service
type Plan struct {
	Chain      entities.StageChain
	Capacities entities.CapacityMap

	// Thresholds are nil-able overrides; zero values mean "use defaults".
	SaturatedThreshold    decimal.Decimal
	NearCapacityThreshold decimal.Decimal
	HasThresholds         bool
}

// planFile mirrors the TOML layout:
//
//	[plan]
//	stages = ["Deposition", "Photolithography"]
//
//	[capacities]
//	Deposition = 23000
//	Photolithography = 22000
//
//	[thresholds]        # optional
//	saturated = 1.0
//	near_capacity = 0.85
type planFile struct {
	Plan struct {
		Stages []string `toml:"stages"`
	} `toml:"plan"`
	Capacities map[string]int64 `toml:"capacities"`
	Thresholds *struct {
		Saturated    float64 `toml:"saturated"`
		NearCapacity float64 `toml:"near_capacity"`
	} `toml:"thresholds"`
}

// LoadPlan reads and validates a TOML plan file. All configuration problems
// are collected and reported together rather than one at a time.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	var file planFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}

	chain := make(entities.StageChain, 0, len(file.Plan.Stages))
	for _, name := range file.Plan.Stages {
		chain = append(chain, entities.StageName(name))
	}

	capacities := make(entities.CapacityMap, len(file.Capacities))
	for name, capacity := range file.Capacities {
		capacities[entities.StageName(name)] = entities.Quantity(capacity)
	}

	validator := services.NewPlanValidator()
	if result := validator.ValidatePlan(chain, capacities); !result.Valid() {
		return nil, fmt.Errorf("invalid plan file %s: %s", path, strings.Join(result.Errors, "; "))
	}

	for stage, capacity := range capacities {
		if capacity > MaxStageCapacity {
			return nil, fmt.Errorf(
				"invalid plan file %s: stage %s capacity %d exceeds maximum %d",
				path, stage, capacity, MaxStageCapacity,
			)
		}
	}

	plan := &Plan{Chain: chain, Capacities: capacities}

	if file.Thresholds != nil {
		plan.SaturatedThreshold = decimal.NewFromFloat(file.Thresholds.Saturated)
		plan.NearCapacityThreshold = decimal.NewFromFloat(file.Thresholds.NearCapacity)
		plan.HasThresholds = true
	}

	return plan, nil
}

// DefaultPlan returns the built-in semiconductor fab chain with its default
// daily capacities.
func DefaultPlan() *Plan {
	chain := entities.StageChain{
		"Deposition", "Photolithography", "Etching", "Doping", "CMP", "Metrology",
	}
	return &Plan{
		Chain: chain,
		Capacities: entities.CapacityMap{
			"Deposition":       23000,
			"Photolithography": 22000,
			"Etching":          22500,
			"Doping":           21500,
			"CMP":              21000,
			"Metrology":        24000,
		},
	}
}
