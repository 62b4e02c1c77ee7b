package directory

import (
	"context"
	"strings"

	businessRepo "sokohub/database/repository/business"
	"sokohub/models"
	"sokohub/utils"
)

// SearchBusinesses pushes the tag disjunction and the city equality down to
// the store, then refines by name client-side. Store iteration order is
// preserved; no sorting is applied.
func (s *DefaultDirectoryService) SearchBusinesses(ctx context.Context, criteria models.BusinessCriteria) ([]models.Business, error) {
	if err := utils.Validate(criteria); err != nil {
		return nil, err
	}

	candidates, err := s.Repo.Search(businessRepo.SearchFilter{
		Tags: criteria.Tags,
		City: criteria.City,
	})
	if err != nil {
		return nil, err
	}

	if criteria.Name == "" {
		return candidates, nil
	}

	// The store has no substring operator here; name matching is a
	// case-insensitive refinement over the candidate set.
	needle := strings.ToLower(criteria.Name)
	var matched []models.Business
	for _, b := range candidates {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}
