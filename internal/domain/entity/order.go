package entity

import (
	"time"
)

const OrderStatusPending = "pending"

type OrderDetail struct {
	ProductID string `json:"productId" firestore:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" firestore:"quantity" bson:"quantity"`
}

type Order struct {
	ID              string        `json:"_id" firestore:"id" bson:"_id"`
	Email           string        `json:"email" firestore:"email" bson:"email"`
	OrderDetails    []OrderDetail `json:"orderDetails" firestore:"orderDetails" bson:"orderDetails"`
	Total           Amount        `json:"total" firestore:"total" bson:"total"`
	Date            time.Time     `json:"date" firestore:"date" bson:"date"`
	OrderStatus     string        `json:"orderStatus" firestore:"orderStatus" bson:"orderStatus"`
	ShippingAddress *Address      `json:"shippingAddress,omitempty" firestore:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	PaymentID       string        `json:"paymentId,omitempty" firestore:"paymentId,omitempty" bson:"paymentId,omitempty"`
	TransactionID   string        `json:"transactionId,omitempty" firestore:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
