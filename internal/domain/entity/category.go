package entity

import (
	"time"
)

type Category struct {
	ID           string    `json:"_id" firestore:"id" bson:"_id"`
	CategoryName string    `json:"categoryName" firestore:"categoryName" bson:"categoryName"`
	CategoryPic  string    `json:"categoryPic" firestore:"categoryPic" bson:"categoryPic"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}
