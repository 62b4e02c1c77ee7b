package content

import (
	"context"

	"sokohub/models"
	"sokohub/utils"

	"go.uber.org/zap"
)

// CreatePost validates the record, assigns its id and inserts it.
func (s *DefaultContentService) CreatePost(ctx context.Context, p *models.Post) (string, error) {
	if err := utils.Validate(p); err != nil {
		return "", err
	}
	p.ID = utils.NewDocumentID()
	if err := s.Repo.Create(p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// UpdatePost overwrites the stored document in full; it is not a merge.
func (s *DefaultContentService) UpdatePost(ctx context.Context, id string, p *models.Post) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid post id %q", id)
	}
	if err := utils.Validate(p); err != nil {
		return err
	}
	p.ID = id
	return s.Repo.Update(p)
}

// PurgePost deletes the document, then best-effort deletes the media folder.
func (s *DefaultContentService) PurgePost(ctx context.Context, id string) (*models.PurgeResult, error) {
	logger := utils.GetLogger()
	if !utils.ValidDocumentID(id) {
		return nil, utils.ValidationErr("invalid post id %q", id)
	}
	if err := s.Repo.Delete(id); err != nil {
		return nil, err
	}
	s.dropCachedURL(ctx, id)

	result := &models.PurgeResult{DocumentDeleted: true}
	deleted, orphaned, err := s.Media.DeleteAll(ctx, models.MediaFolder(models.EntityPost, id))
	result.FilesDeleted = deleted
	result.OrphanedFiles = orphaned
	if err != nil {
		logger.Warn("post media folder partially deleted",
			zap.String("id", id), zap.Strings("orphaned", orphaned), zap.Error(err))
	}
	return result, nil
}

func (s *DefaultContentService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return s.Repo.GetAll()
}

func (s *DefaultContentService) GetFeaturedPosts(ctx context.Context) ([]models.Post, error) {
	return s.Repo.GetFeatured()
}

// SearchPosts applies the tag disjunction at the store and returns the
// candidate set as-is, preserving store iteration order.
func (s *DefaultContentService) SearchPosts(ctx context.Context, criteria models.PostCriteria) ([]models.Post, error) {
	if err := utils.Validate(criteria); err != nil {
		return nil, err
	}
	return s.Repo.SearchByTags(criteria.Tags)
}
