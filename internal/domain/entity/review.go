package entity

import (
	"time"
)

type Review struct {
	ID            string    `json:"_id" firestore:"id" bson:"_id"`
	ProductID     string    `json:"productId" firestore:"productId" bson:"productId"`
	ReviewerEmail string    `json:"reviewerEmail" firestore:"reviewerEmail" bson:"reviewerEmail"`
	ReviewerName  string    `json:"reviewerName,omitempty" firestore:"reviewerName,omitempty" bson:"reviewerName,omitempty"`
	ReviewerPhoto string    `json:"reviewerPhoto,omitempty" firestore:"reviewerPhoto,omitempty" bson:"reviewerPhoto,omitempty"`
	Rating        int       `json:"rating" firestore:"rating" bson:"rating"`
	Comment       string    `json:"comment" firestore:"comment" bson:"comment"`
	ReviewDate    time.Time `json:"reviewDate" firestore:"reviewDate" bson:"reviewDate"`
	LikeCount     int       `json:"likeCount" firestore:"likeCount" bson:"likeCount"`
	LikedBy       []string  `json:"likedBy" firestore:"likedBy" bson:"likedBy"`
}

func (r *Review) LikedByUser(email string) bool {
	for _, e := range r.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}
