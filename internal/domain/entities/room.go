package entities

import "time"

// Room capacity is informational only.
type Room struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Building  string    `json:"building" bson:"building"`
	Capacity  int       `json:"capacity" bson:"capacity"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
