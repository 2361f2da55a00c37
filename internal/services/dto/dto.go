package dto

// Request bodies.

type TokenRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

type PendingRequest struct {
	BioID   int    `json:"bioId" validate:"required,min=1"`
	ReqName string `json:"reqName" validate:"required"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// Response acks, mirroring the wire shapes the frontend already consumes.

type StatusResponse struct {
	Status bool `json:"status"`
}

type InsertAck struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// DashboardInfo is the admin overview document.
type DashboardInfo struct {
	TotalBio     int64   `json:"totalBio"`
	Female       int64   `json:"female"`
	Male         int64   `json:"male"`
	Premium      int64   `json:"premium"`
	TotalRevenue float64 `json:"totalRevenue"`
}
