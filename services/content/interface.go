package content

import (
	"context"

	postRepo "sokohub/database/repository/post"
	"sokohub/models"
	"sokohub/services/media"

	"github.com/go-redis/redis/v8"
)

// ContentService orchestrates validation, the posts collection and the post
// media folders. It mirrors the directory service, differing only in schema
// and collection.
type ContentService interface {
	CreatePost(ctx context.Context, p *models.Post) (string, error)
	UpdatePost(ctx context.Context, id string, p *models.Post) error
	PurgePost(ctx context.Context, id string) (*models.PurgeResult, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetFeaturedPosts(ctx context.Context) ([]models.Post, error)
	// SearchPosts filters by tags only; there is no name or city refinement
	// for posts.
	SearchPosts(ctx context.Context, criteria models.PostCriteria) ([]models.Post, error)
	FeaturedImageURL(ctx context.Context, id string) (string, error)
	SetFeaturedImage(ctx context.Context, id, localPath string) (string, error)
	RemoveFeaturedImage(ctx context.Context, id string) error
}

// DefaultContentService is the production ContentService.
type DefaultContentService struct {
	Repo  postRepo.PostRepository
	Media media.Service
	// Cache holds signed featured-image URLs; nil disables caching.
	Cache *redis.Client
}
