package entities

import "time"

type Course struct {
	ID             string    `json:"id" bson:"_id"`
	Code           string    `json:"code" bson:"code"`
	Name           string    `json:"name" bson:"name"`
	Credits        int       `json:"credits" bson:"credits"`
	InstructorName string    `json:"instructorName" bson:"instructor_name"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}
