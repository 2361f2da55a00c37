package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BiodataInfo holds the demographic section of a profile.
type BiodataInfo struct {
	Name              string `bson:"name,omitempty" json:"name,omitempty"`
	FatherName        string `bson:"fathername,omitempty" json:"fathername,omitempty"`
	MotherName        string `bson:"mothername,omitempty" json:"mothername,omitempty"`
	Height            string `bson:"height,omitempty" json:"height,omitempty"`
	Weight            string `bson:"weight,omitempty" json:"weight,omitempty"`
	Race              string `bson:"race,omitempty" json:"race,omitempty"`
	Age               int    `bson:"age,omitempty" json:"age,omitempty"`
	BirthDate         string `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	PresentDivision   string `bson:"presentDivision,omitempty" json:"presentDivision,omitempty"`
	PermanentDivision string `bson:"permanentDivision,omitempty" json:"permanentDivision,omitempty"`
	Occupation        string `bson:"occupation,omitempty" json:"occupation,omitempty"`
	MobileNumber      string `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
}

// Biodata is the matchmaking profile, distinct from the account document.
// BioID is the public integer identifier assigned from an atomic sequence;
// the Mongo _id stays the storage primary key. Exactly one biodata exists per
// user, keyed by the shared email.
//
// "partenerAge" keeps the original wire spelling; clients depend on it.
type Biodata struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BioID          int                `bson:"bioId" json:"bioId"`
	Email          string             `bson:"email" json:"email"`
	BiodataType    string             `bson:"biodataType,omitempty" json:"biodataType,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Info           BiodataInfo        `bson:"info" json:"info"`
	ExpectedHeight string             `bson:"expectedHeight,omitempty" json:"expectedHeight,omitempty"`
	ExpectedWeight string             `bson:"expectedWeight,omitempty" json:"expectedWeight,omitempty"`
	PartnerAge     string             `bson:"partenerAge,omitempty" json:"partenerAge,omitempty"`
}

const (
	BiodataTypeMale   = "Male"
	BiodataTypeFemale = "Female"
)
