package media

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"sokohub/utils"
)

func TestUpload(t *testing.T) {
	m, store, _ := newTestManager()
	ctx := context.Background()

	var gotObject, gotLocal string
	store.putFn = func(_ context.Context, objectPath, localPath string) error {
		gotObject, gotLocal = objectPath, localPath
		return nil
	}

	url, err := m.Upload(ctx, "business/B/", "/tmp/photo.png", "photo-feat.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotObject != "business/B/photo-feat.png" {
		t.Errorf("stored object path = %q", gotObject)
	}
	if gotLocal != "/tmp/photo.png" {
		t.Errorf("local path = %q", gotLocal)
	}
	if url != "https://signed.example.com/business/B/photo-feat.png" {
		t.Errorf("signed url = %q", url)
	}
}

func TestUploadStoreFailure(t *testing.T) {
	m, store, _ := newTestManager()
	store.putFn = func(_ context.Context, _, _ string) error {
		return errors.New("bucket unreachable")
	}
	_, err := m.Upload(context.Background(), "business/B/", "/tmp/photo.png", "photo.png")
	if err == nil {
		t.Fatal("expected error")
	}
	if utils.StatusFor(err) != 502 {
		t.Errorf("expected store failure status 502, got %d", utils.StatusFor(err))
	}
}

func TestFindBySuffix(t *testing.T) {
	m, store, _ := newTestManager()
	store.listFn = func(_ context.Context, prefix string) ([]string, error) {
		if prefix != "business/B/" {
			t.Errorf("unexpected prefix %q", prefix)
		}
		return []string{
			"business/B/menu.pdf",
			"business/B/photo-feat.png",
			"business/B/other-feat.png",
		}, nil
	}

	obj, err := m.FindBySuffix(context.Background(), "business/B/", "-feat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First match wins.
	if obj.Path != "business/B/photo-feat.png" {
		t.Errorf("matched %q", obj.Path)
	}
	if !obj.IsFeatured {
		t.Error("matched object not flagged featured")
	}
}

func TestFindBySuffixNotFound(t *testing.T) {
	m, store, _ := newTestManager()

	store.listFn = func(_ context.Context, _ string) ([]string, error) { return nil, nil }
	if _, err := m.FindBySuffix(context.Background(), "business/B/", "-feat"); !utils.IsNotFound(err) {
		t.Fatalf("empty folder: expected not-found, got %v", err)
	}

	store.listFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"business/B/plain.png"}, nil
	}
	if _, err := m.FindBySuffix(context.Background(), "business/B/", "-feat"); !utils.IsNotFound(err) {
		t.Fatalf("no match: expected not-found, got %v", err)
	}
}

func TestURLBySuffixEmptyFolder(t *testing.T) {
	m, store, _ := newTestManager()
	store.listFn = func(_ context.Context, _ string) ([]string, error) { return nil, nil }

	_, err := m.URLBySuffix(context.Background(), "business/B/", "-feat")
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestRemoveBySuffix(t *testing.T) {
	m, store, _ := newTestManager()
	store.listFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"post/P/cover-feat.jpg", "post/P/body.jpg"}, nil
	}
	var deleted string
	store.deleteFn = func(_ context.Context, objectPath string) error {
		deleted = objectPath
		return nil
	}

	if err := m.RemoveBySuffix(context.Background(), "post/P/", "-feat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "post/P/cover-feat.jpg" {
		t.Errorf("deleted %q", deleted)
	}
}

func TestDeleteAllEmptyFolder(t *testing.T) {
	m, store, _ := newTestManager()
	store.listFn = func(_ context.Context, _ string) ([]string, error) { return nil, nil }

	deleted, orphaned, err := m.DeleteAll(context.Background(), "business/B/")
	if err != nil {
		t.Fatalf("empty folder must delete successfully, got %v", err)
	}
	if deleted != 0 || len(orphaned) != 0 {
		t.Errorf("deleted=%d orphaned=%v", deleted, orphaned)
	}
}

func TestDeleteAllFansOut(t *testing.T) {
	m, store, _ := newTestManager()
	paths := []string{"business/B/a.png", "business/B/b.png", "business/B/c.pdf"}
	store.listFn = func(_ context.Context, _ string) ([]string, error) { return paths, nil }

	var (
		mu      sync.Mutex
		removed []string
	)
	store.deleteFn = func(_ context.Context, objectPath string) error {
		mu.Lock()
		removed = append(removed, objectPath)
		mu.Unlock()
		return nil
	}

	deleted, orphaned, err := m.DeleteAll(context.Background(), "business/B/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 || len(orphaned) != 0 {
		t.Errorf("deleted=%d orphaned=%v", deleted, orphaned)
	}
	sort.Strings(removed)
	if len(removed) != 3 {
		t.Errorf("removed %v", removed)
	}
}

func TestDeleteAllPartialFailure(t *testing.T) {
	m, store, _ := newTestManager()
	store.listFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"business/B/a.png", "business/B/b.png"}, nil
	}
	store.deleteFn = func(_ context.Context, objectPath string) error {
		if objectPath == "business/B/b.png" {
			return errors.New("permission denied")
		}
		return nil
	}

	deleted, orphaned, err := m.DeleteAll(context.Background(), "business/B/")
	if err == nil {
		t.Fatal("expected aggregate failure")
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if len(orphaned) != 1 || orphaned[0] != "business/B/b.png" {
		t.Errorf("orphaned = %v", orphaned)
	}
}
