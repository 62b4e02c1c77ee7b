package tagRepo

import "sokohub/models"

// TagRepository defines data access for one tag collection. Business tags and
// post tags share the shape and live in separate collections.
type TagRepository interface {
	Create(t *models.Tag) error
	Update(t *models.Tag) error
	Delete(id string) error
	GetByID(id string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
}
