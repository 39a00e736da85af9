package repositories

import "github.com/vsinha/capplan/pkg/domain/entities"

// DemandRepository provides access to the demand forecast series
type DemandRepository interface {
	GetDemands() ([]*entities.DemandRecord, error)
	LoadDemands(demands []*entities.DemandRecord) error
}
