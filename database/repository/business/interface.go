package businessRepo

import "sokohub/models"

// SearchFilter carries the constraints pushed down to the store. Tags is an
// any-match disjunction; City is an exact match against the lowered city.
type SearchFilter struct {
	Tags []string
	City string
}

// BusinessRepository defines data access for the businesses collection.
type BusinessRepository interface {
	Create(b *models.Business) error
	Update(b *models.Business) error
	Delete(id string) error
	Exists(id string) (bool, error)
	GetAll() ([]models.Business, error)
	GetFeatured() ([]models.Business, error)
	Search(f SearchFilter) ([]models.Business, error)
}
