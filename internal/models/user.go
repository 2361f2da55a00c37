package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleRegular UserRole = "regular"
	UserRoleAdmin   UserRole = "admin"
)

type MembershipType string

const (
	MembershipNone    MembershipType = "none"
	MembershipPending MembershipType = "pending"
	MembershipPremium MembershipType = "premium"
)

// UserStatusRegistered is set once the user has submitted a biodata profile.
const UserStatusRegistered = "registered"

// User is the account document. It is created on first login and never
// deleted; membership requests and admin approvals mutate it in place.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Role     UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Type     MembershipType     `bson:"type,omitempty" json:"type,omitempty"`
	Status   string             `bson:"status,omitempty" json:"status,omitempty"`
	BioID    int                `bson:"bioId,omitempty" json:"bioId,omitempty"`
	ReqName  string             `bson:"reqName,omitempty" json:"reqName,omitempty"`
	MakeDate *time.Time         `bson:"makeDate,omitempty" json:"makeDate,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
