package directory

import (
	"context"

	businessRepo "sokohub/database/repository/business"
	"sokohub/models"
	"sokohub/utils"
)

// fakeBusinessRepo is an in-memory BusinessRepository honoring the store-side
// filter semantics: any-match on tags, exact match on the lowered city.
type fakeBusinessRepo struct {
	docs     []models.Business
	createFn func(b *models.Business) error
	deleteFn func(id string) error
}

func (f *fakeBusinessRepo) Create(b *models.Business) error {
	if f.createFn != nil {
		return f.createFn(b)
	}
	f.docs = append(f.docs, *b)
	return nil
}

func (f *fakeBusinessRepo) Update(b *models.Business) error {
	for i := range f.docs {
		if f.docs[i].ID == b.ID {
			f.docs[i] = *b
			return nil
		}
	}
	return utils.StoreErr(nil, "business with id %s not found", b.ID)
}

func (f *fakeBusinessRepo) Delete(id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBusinessRepo) Exists(id string) (bool, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBusinessRepo) GetAll() ([]models.Business, error) {
	return append([]models.Business(nil), f.docs...), nil
}

func (f *fakeBusinessRepo) GetFeatured() ([]models.Business, error) {
	var out []models.Business
	for _, b := range f.docs {
		if b.IsFeatured {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBusinessRepo) Search(filter businessRepo.SearchFilter) ([]models.Business, error) {
	var out []models.Business
	for _, b := range f.docs {
		if len(filter.Tags) > 0 && !intersects(b.Tags, filter.Tags) {
			continue
		}
		if filter.City != "" && b.CityLower != filter.City {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// fakeMedia is a media.Service with swappable behavior.
type fakeMedia struct {
	uploadFn       func(ctx context.Context, folder, localPath, remoteName string) (string, error)
	findFn         func(ctx context.Context, folder, suffix string) (models.MediaObject, error)
	urlFn          func(ctx context.Context, folder, suffix string) (string, error)
	removeFn       func(ctx context.Context, folder, suffix string) error
	deleteAllFn    func(ctx context.Context, folder string) (int, []string, error)
	listFn         func(ctx context.Context, prefix string) ([]string, error)
	deletedFolders []string
}

func (f *fakeMedia) Upload(ctx context.Context, folder, localPath, remoteName string) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, folder, localPath, remoteName)
	}
	return "https://signed.example.com/" + folder + remoteName, nil
}

func (f *fakeMedia) FindBySuffix(ctx context.Context, folder, suffix string) (models.MediaObject, error) {
	if f.findFn != nil {
		return f.findFn(ctx, folder, suffix)
	}
	return models.MediaObject{}, utils.NotFoundErr("no file matching %q in folder %s", suffix, folder)
}

func (f *fakeMedia) URLBySuffix(ctx context.Context, folder, suffix string) (string, error) {
	if f.urlFn != nil {
		return f.urlFn(ctx, folder, suffix)
	}
	return "", utils.NotFoundErr("no file matching %q in folder %s", suffix, folder)
}

func (f *fakeMedia) RemoveBySuffix(ctx context.Context, folder, suffix string) error {
	if f.removeFn != nil {
		return f.removeFn(ctx, folder, suffix)
	}
	return nil
}

func (f *fakeMedia) DeleteAll(ctx context.Context, folder string) (int, []string, error) {
	f.deletedFolders = append(f.deletedFolders, folder)
	if f.deleteAllFn != nil {
		return f.deleteAllFn(ctx, folder)
	}
	return 0, nil, nil
}

func (f *fakeMedia) List(ctx context.Context, prefix string) ([]string, error) {
	if f.listFn != nil {
		return f.listFn(ctx, prefix)
	}
	return nil, nil
}

func newTestService() (*DefaultDirectoryService, *fakeBusinessRepo, *fakeMedia) {
	repo := &fakeBusinessRepo{}
	md := &fakeMedia{}
	return &DefaultDirectoryService{Repo: repo, Media: md}, repo, md
}
