package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"sokohub/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSObjectStore implements ObjectStore over a Google Cloud Storage bucket.
type GCSObjectStore struct {
	client *storage.Client
	bucket string
}

// NewGCSService builds the full media Service: a GCS-backed folder manager
// with service-account URL signing.
func NewGCSService(serviceAccountPath, bucket string) (Service, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	sa, err := config.LoadServiceAccount(serviceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	store := &GCSObjectStore{client: client, bucket: bucket}
	return NewFolderManager(store, NewURLSigner(bucket, sa)), nil
}

// List returns every object path under prefix.
func (s *GCSObjectStore) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	var paths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, err)
		}
		paths = append(paths, attrs.Name)
	}
	return paths, nil
}

// Put copies a local file to objectPath, detecting the content type from the
// file extension.
func (s *GCSObjectStore) Put(ctx context.Context, objectPath, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	if ext := filepath.Ext(localPath); ext != "" {
		w.ObjectAttrs.ContentType = mime.TypeByExtension(ext)
	}

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

func (s *GCSObjectStore) Delete(ctx context.Context, objectPath string) error {
	if err := s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectPath, err)
	}
	return nil
}
