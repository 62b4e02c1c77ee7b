package media

import (
	"context"

	"sokohub/models"
)

// Service manages one logical folder per entity (`<entityType>/<entityId>/`)
// in the object store.
type Service interface {
	// Upload copies a local file into folder under remoteName and returns a
	// signed read URL for the stored object.
	Upload(ctx context.Context, folder, localPath, remoteName string) (string, error)
	// FindBySuffix returns the first object in folder whose filename, with
	// the extension stripped, ends with suffix.
	FindBySuffix(ctx context.Context, folder, suffix string) (models.MediaObject, error)
	// URLBySuffix is FindBySuffix followed by URL signing.
	URLBySuffix(ctx context.Context, folder, suffix string) (string, error)
	// RemoveBySuffix deletes the first object matching suffix.
	RemoveBySuffix(ctx context.Context, folder, suffix string) error
	// DeleteAll deletes every object under folder in parallel, best-effort.
	// It returns the number deleted and the paths left behind on failure.
	DeleteAll(ctx context.Context, folder string) (int, []string, error)
	// List returns the object paths under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ObjectStore is the narrow port the folder manager drives.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Put(ctx context.Context, objectPath, localPath string) error
	Delete(ctx context.Context, objectPath string) error
}

// URLIssuer signs read access to a stored object.
type URLIssuer interface {
	Issue(objectPath string) (string, error)
}
