package models

// DayEntry is one row of a business timetable.
type DayEntry struct {
	Day      string  `bson:"day" json:"day" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	IsOpen   bool    `bson:"isOpen" json:"isOpen"`
	Commence *string `bson:"commence" json:"commence" validate:"omitempty,clock"`
	Finish   *string `bson:"finish" json:"finish" validate:"omitempty,clock"`
}

// Business is a directory entry. Tag references are checked for shape only,
// never for existence in the tag collection.
type Business struct {
	ID                   string                 `bson:"id" json:"id,omitempty"`
	Name                 string                 `bson:"name" json:"name" validate:"required"`
	Description          *string                `bson:"description" json:"description"`
	Tags                 []string               `bson:"tags" json:"tags" validate:"omitempty,dive,docid"`
	PhoneNumber          *string                `bson:"phoneNumber" json:"phoneNumber"`
	PhoneNumberSecondary *string                `bson:"phoneNumberSecondary" json:"phoneNumberSecondary"`
	Email                *string                `bson:"email" json:"email" validate:"omitempty,email"`
	Website              *string                `bson:"website" json:"website" validate:"omitempty,uri"`
	Address              *string                `bson:"address" json:"address"`
	City                 *string                `bson:"city" json:"city"`
	CityLower            string                 `bson:"cityLower" json:"-"`
	IsFeatured           bool                   `bson:"isFeatured" json:"isFeatured"`
	TimeTable            []DayEntry             `bson:"timeTable" json:"timeTable" validate:"omitempty,unique=Day,dive"`
	Appointments         map[string]interface{} `bson:"appointments" json:"appointments" validate:"required"`
	FeaturedImageURL     *string                `bson:"featuredImageURL" json:"featuredImageURL" validate:"omitempty,uri"`
}
