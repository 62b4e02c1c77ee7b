package content

import (
	"context"

	"sokohub/models"
	"sokohub/utils"
)

// fakePostRepo is an in-memory PostRepository honoring the any-match tag
// semantics of the store.
type fakePostRepo struct {
	docs []models.Post
}

func (f *fakePostRepo) Create(p *models.Post) error {
	f.docs = append(f.docs, *p)
	return nil
}

func (f *fakePostRepo) Update(p *models.Post) error {
	for i := range f.docs {
		if f.docs[i].ID == p.ID {
			f.docs[i] = *p
			return nil
		}
	}
	return utils.StoreErr(nil, "post with id %s not found", p.ID)
}

func (f *fakePostRepo) Delete(id string) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) Exists(id string) (bool, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePostRepo) GetAll() ([]models.Post, error) {
	return append([]models.Post(nil), f.docs...), nil
}

func (f *fakePostRepo) GetFeatured() ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.docs {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) SearchByTags(tags []string) ([]models.Post, error) {
	if len(tags) == 0 {
		return f.GetAll()
	}
	var out []models.Post
	for _, p := range f.docs {
		for _, pt := range p.Tags {
			matched := false
			for _, t := range tags {
				if pt == t {
					out = append(out, p)
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}
	return out, nil
}

// fakeMedia is a media.Service with swappable behavior.
type fakeMedia struct {
	uploadFn    func(ctx context.Context, folder, localPath, remoteName string) (string, error)
	urlFn       func(ctx context.Context, folder, suffix string) (string, error)
	removeFn    func(ctx context.Context, folder, suffix string) error
	deleteAllFn func(ctx context.Context, folder string) (int, []string, error)
}

func (f *fakeMedia) Upload(ctx context.Context, folder, localPath, remoteName string) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, folder, localPath, remoteName)
	}
	return "https://signed.example.com/" + folder + remoteName, nil
}

func (f *fakeMedia) FindBySuffix(ctx context.Context, folder, suffix string) (models.MediaObject, error) {
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
	if f.deleteAllFn != nil {
		return f.deleteAllFn(ctx, folder)
	}
	return 0, nil, nil
}

func (f *fakeMedia) List(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}

func newTestService() (*DefaultContentService, *fakePostRepo, *fakeMedia) {
	repo := &fakePostRepo{}
	md := &fakeMedia{}
	return &DefaultContentService{Repo: repo, Media: md}, repo, md
}
