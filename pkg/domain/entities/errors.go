package entities

import "errors"

// Input-contract and configuration errors. All validation failures wrap one
// of these sentinels so callers can classify rejections with errors.Is.
var (
	// ErrEmptyChain indicates a stage chain with no stages.
	ErrEmptyChain = errors.New("stage chain cannot be empty")

	// ErrDuplicateStage indicates a stage name appearing twice in a chain.
	ErrDuplicateStage = errors.New("duplicate stage in chain")

	// ErrMissingCapacity indicates a chain stage with no capacity entry.
	ErrMissingCapacity = errors.New("capacity map missing entry for stage")

	// ErrNegativeCapacity indicates a capacity below zero. Zero itself is
	// valid and models a fully blocked stage.
	ErrNegativeCapacity = errors.New("stage capacity cannot be negative")

	// ErrNegativeDemand indicates a forecasted demand below zero.
	ErrNegativeDemand = errors.New("forecasted demand cannot be negative")

	// ErrUnsortedDemand indicates demand dates out of chronological order.
	ErrUnsortedDemand = errors.New("demand series must be sorted ascending by date")

	// ErrDuplicateDate indicates two demand records for the same date.
	ErrDuplicateDate = errors.New("duplicate date in demand series")
)
