package model

import "time"

// Service is an item in the detailing services catalog shown on the public
// site and managed by admins.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       string    `json:"price" bson:"price"`
	Features    []string  `json:"features" bson:"features"`
	ImageURL    string    `json:"image,omitempty" bson:"image,omitempty"`
	ImageKey    string    `json:"-" bson:"imageKey,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ServiceInput carries the mutable fields of a catalog entry for create and
// update operations. ImageURL/ImageKey are set only when a new image was
// uploaded.
type ServiceInput struct {
	Title       string
	Description string
	Price       string
	Features    []string
	ImageURL    string
	ImageKey    string
}
