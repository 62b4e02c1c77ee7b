package models

import (
	"path"
	"strings"
)

// Entity types owning media folders.
const (
	EntityBusiness = "business"
	EntityPost     = "post"
)

// FeaturedSuffix marks a stored filename (without extension) as the folder's
// featured asset. API consumers rely on the exact "<base>-feat.<ext>" form.
const FeaturedSuffix = "-feat"

// MediaObject is a stored object described once at read time; suffix parsing
// of filenames lives here and nowhere else.
type MediaObject struct {
	Path       string `json:"path"`
	IsFeatured bool   `json:"isFeatured"`
}

// NewMediaObject derives the featured flag from objectPath's filename.
func NewMediaObject(objectPath string) MediaObject {
	base := path.Base(objectPath)
	base = strings.TrimSuffix(base, path.Ext(base))
	return MediaObject{
		Path:       objectPath,
		IsFeatured: strings.HasSuffix(base, FeaturedSuffix),
	}
}

// FeaturedName builds the remote name that marks an upload as featured:
// "photo.png" becomes "photo-feat.png".
func FeaturedName(localPath string) string {
	base := path.Base(localPath)
	ext := path.Ext(base)
	return strings.TrimSuffix(base, ext) + FeaturedSuffix + ext
}

// MediaFolder is the object-store prefix owning an entity's files.
func MediaFolder(entityType, entityID string) string {
	return entityType + "/" + entityID + "/"
}

// PurgeResult reports the two non-transactional phases of an entity removal.
// OrphanedFiles lists objects left behind when folder deletion partly failed.
type PurgeResult struct {
	DocumentDeleted bool     `json:"documentDeleted"`
	FilesDeleted    int      `json:"filesDeleted"`
	OrphanedFiles   []string `json:"orphanedFiles,omitempty"`
}
