package content

import (
	"context"

	"sokohub/models"
	"sokohub/utils"

	"go.uber.org/zap"
)

func featURLKey(id string) string {
	return "featurl:" + models.EntityPost + ":" + id
}

// FeaturedImageURL returns a signed URL for the post's featured asset.
func (s *DefaultContentService) FeaturedImageURL(ctx context.Context, id string) (string, error) {
	if !utils.ValidDocumentID(id) {
		return "", utils.ValidationErr("invalid post id %q", id)
	}
	if s.Cache != nil {
		if url, err := s.Cache.Get(ctx, featURLKey(id)).Result(); err == nil && url != "" {
			return url, nil
		}
	}
	url, err := s.Media.URLBySuffix(ctx, models.MediaFolder(models.EntityPost, id), models.FeaturedSuffix)
	if err != nil {
		return "", err
	}
	s.cacheURL(ctx, id, url)
	return url, nil
}

// SetFeaturedImage uploads localPath under the "<base>-feat.<ext>" name.
func (s *DefaultContentService) SetFeaturedImage(ctx context.Context, id, localPath string) (string, error) {
	if !utils.ValidDocumentID(id) {
		return "", utils.ValidationErr("invalid post id %q", id)
	}
	if localPath == "" {
		return "", utils.ValidationErr("file path is required")
	}
	url, err := s.Media.Upload(ctx,
		models.MediaFolder(models.EntityPost, id),
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
func (s *DefaultContentService) RemoveFeaturedImage(ctx context.Context, id string) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid post id %q", id)
	}
	if err := s.Media.RemoveBySuffix(ctx, models.MediaFolder(models.EntityPost, id), models.FeaturedSuffix); err != nil {
		return err
	}
	s.dropCachedURL(ctx, id)
	return nil
}

func (s *DefaultContentService) cacheURL(ctx context.Context, id, url string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, featURLKey(id), url, 0).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache featured image URL", zap.String("id", id), zap.Error(err))
	}
}

func (s *DefaultContentService) dropCachedURL(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, featURLKey(id)).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop cached featured image URL", zap.String("id", id), zap.Error(err))
	}
}
