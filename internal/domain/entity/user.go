package entity

import (
	"time"
)

type Address struct {
	FullName   string `json:"fullName" firestore:"fullName" bson:"fullName" validate:"required"`
	Phone      string `json:"phone" firestore:"phone" bson:"phone" validate:"required"`
	Street     string `json:"street" firestore:"street" bson:"street" validate:"required"`
	City       string `json:"city" firestore:"city" bson:"city" validate:"required"`
	PostalCode string `json:"postalCode,omitempty" firestore:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string `json:"country" firestore:"country" bson:"country" validate:"required"`
}

// User is keyed by email. CreatedAt is written once, on the first upsert.
type User struct {
	Email           string    `json:"email" firestore:"email" bson:"_id"`
	Name            string    `json:"name,omitempty" firestore:"name,omitempty" bson:"name,omitempty"`
	PhotoURL        string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty" bson:"photoURL,omitempty"`
	IsAdmin         bool      `json:"isAdmin" firestore:"isAdmin" bson:"isAdmin"`
	IsSeller        bool      `json:"isSeller" firestore:"isSeller" bson:"isSeller"`
	ShippingAddress *Address  `json:"shippingAddress,omitempty" firestore:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt" bson:"updatedAt"`
}

// Role flags for admin role changes. A nil field is left untouched.
type RoleUpdate struct {
	IsAdmin  *bool
	IsSeller *bool
}
