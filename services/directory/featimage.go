package directory

import (
	"context"

	"sokohub/models"
	"sokohub/utils"

	"go.uber.org/zap"
)

func featURLKey(id string) string {
	return "featurl:" + models.EntityBusiness + ":" + id
}

// FeaturedImageURL returns a signed URL for the business's featured asset.
// Signed URLs never expire in practice, so cache hits are always valid.
func (s *DefaultDirectoryService) FeaturedImageURL(ctx context.Context, id string) (string, error) {
	if !utils.ValidDocumentID(id) {
		return "", utils.ValidationErr("invalid business id %q", id)
	}
	if s.Cache != nil {
		if url, err := s.Cache.Get(ctx, featURLKey(id)).Result(); err == nil && url != "" {
			return url, nil
		}
	}
	url, err := s.Media.URLBySuffix(ctx, models.MediaFolder(models.EntityBusiness, id), models.FeaturedSuffix)
	if err != nil {
		return "", err
	}
	s.cacheURL(ctx, id, url)
	return url, nil
}

// SetFeaturedImage uploads localPath under the "<base>-feat.<ext>" name; the
// filename suffix is the only thing that marks the asset as featured.
func (s *DefaultDirectoryService) SetFeaturedImage(ctx context.Context, id, localPath string) (string, error) {
	if !utils.ValidDocumentID(id) {
		return "", utils.ValidationErr("invalid business id %q", id)
	}
	if localPath == "" {
		return "", utils.ValidationErr("file path is required")
	}
	url, err := s.Media.Upload(ctx,
		models.MediaFolder(models.EntityBusiness, id),
		localPath,
		models.FeaturedName(localPath),
	)
	if err != nil {
		return "", err
	}
	s.cacheURL(ctx, id, url)
	return url, nil
}

// RemoveFeaturedImage deletes the featured asset only.
func (s *DefaultDirectoryService) RemoveFeaturedImage(ctx context.Context, id string) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid business id %q", id)
	}
	if err := s.Media.RemoveBySuffix(ctx, models.MediaFolder(models.EntityBusiness, id), models.FeaturedSuffix); err != nil {
		return err
	}
	s.dropCachedURL(ctx, id)
	return nil
}

func (s *DefaultDirectoryService) cacheURL(ctx context.Context, id, url string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, featURLKey(id), url, 0).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache featured image URL", zap.String("id", id), zap.Error(err))
	}
}

func (s *DefaultDirectoryService) dropCachedURL(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, featURLKey(id)).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop cached featured image URL", zap.String("id", id), zap.Error(err))
	}
}
