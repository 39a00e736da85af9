package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vsinha/capplan/pkg/application/dto"
	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/domain/repositories"
	"github.com/vsinha/capplan/pkg/simulation"
)

// PlanningService runs the full capacity-planning pipeline: fetch the demand
// series, simulate flow through the chain, classify bottlenecks.
type PlanningService struct {
	simulator  *simulation.Simulator
	classifier *simulation.Classifier
}

// NewPlanningService creates a planning service with default thresholds
func NewPlanningService() *PlanningService {
	return &PlanningService{
		simulator:  simulation.NewSimulator(),
		classifier: simulation.NewClassifier(),
	}
}

// NewPlanningServiceWithClassifier creates a planning service using the
// given classifier (custom thresholds)
func NewPlanningServiceWithClassifier(classifier *simulation.Classifier) *PlanningService {
	return &PlanningService{
		simulator:  simulation.NewSimulator(),
		classifier: classifier,
	}
}

// Plan executes one full simulation run. Every run recomputes everything
// from scratch; capacities are user-adjustable inputs and no partial
// results are cached across runs.
func (s *PlanningService) Plan(
	ctx context.Context,
	demandRepo repositories.DemandRepository,
	chain entities.StageChain,
	capacities entities.CapacityMap,
) (*dto.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	demandPtrs, err := demandRepo.GetDemands()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch demand series: %w", err)
	}
	demand := make([]entities.DemandRecord, len(demandPtrs))
	for i, record := range demandPtrs {
		demand[i] = *record
	}

	return s.PlanSeries(ctx, demand, chain, capacities)
}

// PlanSeries is Plan for callers that already hold the demand series in
// memory (the sweep service runs many configurations against one series).
func (s *PlanningService) PlanSeries(
	ctx context.Context,
	demand []entities.DemandRecord,
	chain entities.StageChain,
	capacities entities.CapacityMap,
) (*dto.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	production, utilization, err := s.simulator.Simulate(demand, chain, capacities)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	saturated, nearCapacity, err := s.classifier.Classify(utilization, chain)
	if err != nil {
		return nil, fmt.Errorf("bottleneck classification failed: %w", err)
	}

	return &dto.PlanResult{
		Chain:        chain,
		Capacities:   capacities.Clone(),
		Production:   production,
		Utilization:  utilization,
		Saturated:    saturated,
		NearCapacity: nearCapacity,
		Elapsed:      time.Since(start),
	}, nil
}
