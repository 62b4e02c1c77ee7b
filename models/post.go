package models

// Post is a community content entry authored by an identity-provider user.
type Post struct {
	ID               string   `bson:"id" json:"id,omitempty"`
	Title            string   `bson:"title" json:"title" validate:"required"`
	Content          *string  `bson:"content" json:"content"`
	Tags             []string `bson:"tags" json:"tags" validate:"omitempty,dive,docid"`
	IsFeatured       bool     `bson:"isFeatured" json:"isFeatured"`
	FeaturedImageURL *string  `bson:"featuredImageURL" json:"featuredImageURL" validate:"omitempty,uri"`
	Timestamp        int64    `bson:"timestamp" json:"timestamp" validate:"gte=0"`
	AuthorID         string   `bson:"authorId" json:"authorId" validate:"required,userid"`
}
