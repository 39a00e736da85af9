package memory

import (
	"github.com/vsinha/capplan/pkg/domain/entities"
	"github.com/vsinha/capplan/pkg/domain/repositories"
)

// DemandRepository provides in-memory storage for the demand forecast series
type DemandRepository struct {
	demands []entities.DemandRecord
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		demands: []entities.DemandRecord{},
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadDemands loads demand records into the repository. The series contract
// is enforced on load so every later read sees a valid series.
func (r *DemandRepository) LoadDemands(demands []*entities.DemandRecord) error {
	series := make([]entities.DemandRecord, 0, len(r.demands)+len(demands))
	series = append(series, r.demands...)
	for _, demand := range demands {
		series = append(series, *demand)
	}
	if err := entities.ValidateDemandSeries(series); err != nil {
		return err
	}
	r.demands = series
	return nil
}

// GetDemands returns the full demand series in date order
func (r *DemandRepository) GetDemands() ([]*entities.DemandRecord, error) {
	demands := make([]*entities.DemandRecord, 0, len(r.demands))
	for i := range r.demands {
		demands = append(demands, &r.demands[i])
	}
	return demands, nil
}
