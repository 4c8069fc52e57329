package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
// Submissions are write-only through this API; staff review them out-of-band.
type ContactSubmission struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"` // "unread" | "read"
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
