package media

import "context"

// fakeStore is an in-memory ObjectStore with swappable behavior.
type fakeStore struct {
	listFn   func(ctx context.Context, prefix string) ([]string, error)
	putFn    func(ctx context.Context, objectPath, localPath string) error
	deleteFn func(ctx context.Context, objectPath string) error
}

func (f *fakeStore) List(ctx context.Context, prefix string) ([]string, error) {
	if f.listFn != nil {
		return f.listFn(ctx, prefix)
	}
	return nil, nil
}

func (f *fakeStore) Put(ctx context.Context, objectPath, localPath string) error {
	if f.putFn != nil {
		return f.putFn(ctx, objectPath, localPath)
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, objectPath string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, objectPath)
	}
	return nil
}

// fakeIssuer signs by prefixing, or delegates to issueFn.
type fakeIssuer struct {
	issueFn func(objectPath string) (string, error)
}

func (f *fakeIssuer) Issue(objectPath string) (string, error) {
	if f.issueFn != nil {
		return f.issueFn(objectPath)
	}
	return "https://signed.example.com/" + objectPath, nil
}

func newTestManager() (*FolderManager, *fakeStore, *fakeIssuer) {
	store := &fakeStore{}
	issuer := &fakeIssuer{}
	return NewFolderManager(store, issuer), store, issuer
}
