package postRepo

import "sokohub/models"

// PostRepository defines data access for the posts collection.
type PostRepository interface {
	Create(p *models.Post) error
	Update(p *models.Post) error
	Delete(id string) error
	Exists(id string) (bool, error)
	GetAll() ([]models.Post, error)
	GetFeatured() ([]models.Post, error)
	// SearchByTags applies the any-match tag disjunction at the store.
	SearchByTags(tags []string) ([]models.Post, error)
}
