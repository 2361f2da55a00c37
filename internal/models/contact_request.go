package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
)

// ContactRequest records a paid request to see a biodata's contact details.
// Submission always starts at pending; only an admin moves it to approved
// (terminal, re-approval is idempotent). The owner may withdraw it at any
// status.
type ContactRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ApplicantEmail string             `bson:"ApplicantEmail" json:"ApplicantEmail"`
	BioID          int                `bson:"bioId,omitempty" json:"bioId,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	MobileNumber   string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	Amount         float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	TransactionID  string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status         RequestStatus      `bson:"status" json:"status"`
}
