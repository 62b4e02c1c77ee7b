package directory

import (
	"context"
	"strings"

	"sokohub/models"
	"sokohub/utils"

	"go.uber.org/zap"
)

// CreateBusiness validates and normalizes the record, assigns its id and
// inserts it. Tag references are not checked against the tag collection.
func (s *DefaultDirectoryService) CreateBusiness(ctx context.Context, b *models.Business) (string, error) {
	normalizeBusiness(b)
	if err := utils.Validate(b); err != nil {
		return "", err
	}
	b.ID = utils.NewDocumentID()
	if err := s.Repo.Create(b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// UpdateBusiness overwrites the stored document in full; it is not a merge.
func (s *DefaultDirectoryService) UpdateBusiness(ctx context.Context, id string, b *models.Business) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid business id %q", id)
	}
	normalizeBusiness(b)
	if err := utils.Validate(b); err != nil {
		return err
	}
	b.ID = id
	return s.Repo.Update(b)
}

// PurgeBusiness deletes the document, then attempts to delete every object
// under the business's media folder. Folder deletion failing after the
// document is gone leaves orphaned files, reported in the result.
func (s *DefaultDirectoryService) PurgeBusiness(ctx context.Context, id string) (*models.PurgeResult, error) {
	logger := utils.GetLogger()
	if !utils.ValidDocumentID(id) {
		return nil, utils.ValidationErr("invalid business id %q", id)
	}
	if err := s.Repo.Delete(id); err != nil {
		return nil, err
	}
	s.dropCachedURL(ctx, id)

	result := &models.PurgeResult{DocumentDeleted: true}
	deleted, orphaned, err := s.Media.DeleteAll(ctx, models.MediaFolder(models.EntityBusiness, id))
	result.FilesDeleted = deleted
	result.OrphanedFiles = orphaned
	if err != nil {
		logger.Warn("business media folder partially deleted",
			zap.String("id", id), zap.Strings("orphaned", orphaned), zap.Error(err))
	}
	return result, nil
}

func (s *DefaultDirectoryService) GetAllBusinesses(ctx context.Context) ([]models.Business, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDirectoryService) GetFeaturedBusinesses(ctx context.Context) ([]models.Business, error) {
	return s.Repo.GetFeatured()
}

// normalizeBusiness maintains the lowered city shadow field the store
// matches against.
func normalizeBusiness(b *models.Business) {
	b.CityLower = ""
	if b.City != nil {
		b.CityLower = strings.ToLower(strings.TrimSpace(*b.City))
	}
}
