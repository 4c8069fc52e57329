package model

import "time"

// PortfolioImage is the metadata document kept for each image in the
// portfolio gallery. The blob itself lives in storage; URL points at it.
type PortfolioImage struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	URL        string    `json:"url" bson:"url"`
	Title      string    `json:"title" bson:"title"`
	StorageKey string    `json:"-" bson:"storageKey"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
