package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favorite joins a viewer's email to a target biodata. ServerId is the string
// form of the target biodata's _id; the read-side pipeline coerces it back to
// an ObjectID when joining. Unique per (email, serverId) — creation is a
// no-op when the pair already exists.
type Favorite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	ServerID   string             `bson:"serverId" json:"serverId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Occupation string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	BioID      int                `bson:"bioId,omitempty" json:"bioId,omitempty"`
}

// FavoriteView is the joined row returned by the favorites listing pipeline.
// Joined fields stay empty when the stored serverId does not resolve.
type FavoriteView struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Name             string             `bson:"name,omitempty" json:"name,omitempty"`
	BioDataID        int                `bson:"bioDataId,omitempty" json:"bioDataId,omitempty"`
	PermanentAddress string             `bson:"permanentAddress,omitempty" json:"permanentAddress,omitempty"`
	Occupation       string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
}
