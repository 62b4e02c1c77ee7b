package tags

import (
	tagRepo "sokohub/database/repository/tag"
	"sokohub/models"
	"sokohub/utils"
)

// TagService manages one tag collection. Tags are created, updated and
// deleted independently of the entities referencing them; there is no
// cascading update or delete of references.
type TagService interface {
	Create(t *models.Tag) (string, error)
	Update(id string, t *models.Tag) error
	Remove(id string) error
	Get(id string) (*models.Tag, error)
	List() ([]models.Tag, error)
}

// DefaultTagService is the production TagService.
type DefaultTagService struct {
	Repo tagRepo.TagRepository
}

func (s *DefaultTagService) Create(t *models.Tag) (string, error) {
	if err := utils.Validate(t); err != nil {
		return "", err
	}
	t.ID = utils.NewDocumentID()
	if err := s.Repo.Create(t); err != nil {
		return "", err
	}
	return t.ID, nil
}

func (s *DefaultTagService) Update(id string, t *models.Tag) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid tag id %q", id)
	}
	if err := utils.Validate(t); err != nil {
		return err
	}
	t.ID = id
	return s.Repo.Update(t)
}

func (s *DefaultTagService) Remove(id string) error {
	if !utils.ValidDocumentID(id) {
		return utils.ValidationErr("invalid tag id %q", id)
	}
	return s.Repo.Delete(id)
}

func (s *DefaultTagService) Get(id string) (*models.Tag, error) {
	if !utils.ValidDocumentID(id) {
		return nil, utils.ValidationErr("invalid tag id %q", id)
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultTagService) List() ([]models.Tag, error) {
	return s.Repo.GetAll()
}
