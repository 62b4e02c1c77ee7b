package media

import (
	"context"
	"path"
	"strings"
	"sync"

	"sokohub/models"
	"sokohub/utils"

	"golang.org/x/sync/errgroup"
)

// FolderManager implements Service over an ObjectStore and a URLIssuer.
type FolderManager struct {
	Store  ObjectStore
	Issuer URLIssuer
}

// NewFolderManager creates a folder manager over the given store and issuer.
func NewFolderManager(store ObjectStore, issuer URLIssuer) *FolderManager {
	return &FolderManager{Store: store, Issuer: issuer}
}

func (m *FolderManager) Upload(ctx context.Context, folder, localPath, remoteName string) (string, error) {
	objectPath := folder + remoteName
	if err := m.Store.Put(ctx, objectPath, localPath); err != nil {
		return "", utils.StoreErr(err, "failed to upload %s", remoteName)
	}
	url, err := m.Issuer.Issue(objectPath)
	if err != nil {
		return "", utils.StoreErr(err, "failed to sign URL for %s", objectPath)
	}
	return url, nil
}

// FindBySuffix lists the folder and returns the first name whose extension-
// stripped filename ends with suffix. The first match wins; uniqueness of the
// featured asset is a convention, not enforced here.
func (m *FolderManager) FindBySuffix(ctx context.Context, folder, suffix string) (models.MediaObject, error) {
	paths, err := m.Store.List(ctx, folder)
	if err != nil {
		return models.MediaObject{}, utils.StoreErr(err, "failed to list folder %s", folder)
	}
	for _, p := range paths {
		base := path.Base(p)
		base = strings.TrimSuffix(base, path.Ext(base))
		if strings.HasSuffix(base, suffix) {
			return models.NewMediaObject(p), nil
		}
	}
	return models.MediaObject{}, utils.NotFoundErr("no file matching %q in folder %s", suffix, folder)
}

func (m *FolderManager) URLBySuffix(ctx context.Context, folder, suffix string) (string, error) {
	obj, err := m.FindBySuffix(ctx, folder, suffix)
	if err != nil {
		return "", err
	}
	url, err := m.Issuer.Issue(obj.Path)
	if err != nil {
		return "", utils.StoreErr(err, "failed to sign URL for %s", obj.Path)
	}
	return url, nil
}

func (m *FolderManager) RemoveBySuffix(ctx context.Context, folder, suffix string) error {
	obj, err := m.FindBySuffix(ctx, folder, suffix)
	if err != nil {
		return err
	}
	if err := m.Store.Delete(ctx, obj.Path); err != nil {
		return utils.StoreErr(err, "failed to delete %s", obj.Path)
	}
	return nil
}

// DeleteAll fans out one delete per object and waits for all to settle. A
// partial failure is reported once, with the surviving paths; nothing is
// retried or rolled back. An empty folder deletes successfully.
func (m *FolderManager) DeleteAll(ctx context.Context, folder string) (int, []string, error) {
	paths, err := m.Store.List(ctx, folder)
	if err != nil {
		return 0, nil, utils.StoreErr(err, "failed to list folder %s", folder)
	}
	if len(paths) == 0 {
		return 0, nil, nil
	}

	var (
		mu       sync.Mutex
		orphaned []string
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			if err := m.Store.Delete(gctx, p); err != nil {
				mu.Lock()
				orphaned = append(orphaned, p)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	deleted := len(paths) - len(orphaned)
	if len(orphaned) > 0 {
		return deleted, orphaned, utils.StoreErr(nil, "failed to delete %d of %d files in folder %s", len(orphaned), len(paths), folder)
	}
	return deleted, nil, nil
}

func (m *FolderManager) List(ctx context.Context, prefix string) ([]string, error) {
	paths, err := m.Store.List(ctx, prefix)
	if err != nil {
		return nil, utils.StoreErr(err, "failed to list prefix %s", prefix)
	}
	return paths, nil
}
