package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a success-story record. No workflow state.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	MarriageDate string             `bson:"marriageDate,omitempty" json:"marriageDate,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Story        string             `bson:"story,omitempty" json:"story,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
}
