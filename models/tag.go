package models

// Tag is the shared shape for business tags and post tags; the two live in
// separate collections.
type Tag struct {
	ID   string `bson:"id" json:"id,omitempty"`
	Name string `bson:"name" json:"name" validate:"required,tagname"`
}
