package models

// Counter is a named sequence document. The bioId sequence is advanced with
// an atomic $inc upsert so concurrent profile creation never observes the
// same value.
type Counter struct {
	ID    string `bson:"_id" json:"_id"`
	Value int    `bson:"value" json:"value"`
}

// CounterBioID is the _id of the biodata sequence document.
const CounterBioID = "bioId"
