package model

import "time"

// UserProfile is the customer profile document, keyed by the identity
// provider's subject id. It is created on first authenticated access.
type UserProfile struct {
	ID          string    `json:"uid" bson:"_id"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ProfileUpdate carries the caller-editable profile fields.
type ProfileUpdate struct {
	DisplayName string
	PhoneNumber string
}
