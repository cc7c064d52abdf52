package entity

import (
	"time"
)

type CartItem struct {
	ID        string    `json:"_id" firestore:"id" bson:"_id"`
	Email     string    `json:"email" firestore:"email" bson:"email"`
	ProductID string    `json:"productId" firestore:"productId" bson:"productId"`
	Quantity  int       `json:"quantity" firestore:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"addedAt" firestore:"addedAt" bson:"addedAt"`
}
