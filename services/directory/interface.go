package directory

import (
	"context"

	businessRepo "sokohub/database/repository/business"
	"sokohub/models"
	"sokohub/services/media"

	"github.com/go-redis/redis/v8"
)

// DirectoryService orchestrates validation, the businesses collection and
// the business media folders.
type DirectoryService interface {
	CreateBusiness(ctx context.Context, b *models.Business) (string, error)
	UpdateBusiness(ctx context.Context, id string, b *models.Business) error
	// PurgeBusiness removes the document, then best-effort deletes the media
	// folder. The two phases are independent and non-transactional.
	PurgeBusiness(ctx context.Context, id string) (*models.PurgeResult, error)
	GetAllBusinesses(ctx context.Context) ([]models.Business, error)
	GetFeaturedBusinesses(ctx context.Context) ([]models.Business, error)
	SearchBusinesses(ctx context.Context, criteria models.BusinessCriteria) ([]models.Business, error)
	FeaturedImageURL(ctx context.Context, id string) (string, error)
	SetFeaturedImage(ctx context.Context, id, localPath string) (string, error)
	RemoveFeaturedImage(ctx context.Context, id string) error
}

// DefaultDirectoryService is the production DirectoryService.
type DefaultDirectoryService struct {
	Repo  businessRepo.BusinessRepository
	Media media.Service
	// Cache holds signed featured-image URLs; nil disables caching.
	Cache *redis.Client
}
