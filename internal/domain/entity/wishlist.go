package entity

import (
	"time"
)

type WishlistItem struct {
	ID        string    `json:"_id" firestore:"id" bson:"_id"`
	Email     string    `json:"email" firestore:"email" bson:"email"`
	ProductID string    `json:"productId" firestore:"productId" bson:"productId"`
	AddedAt   time.Time `json:"addedAt" firestore:"addedAt" bson:"addedAt"`
}

type WishlistItemWithProduct struct {
	WishlistItem
	Product *Product `json:"product,omitempty"`
}
