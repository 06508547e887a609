package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the order status enum. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderLine is one line of an order. Name and price are snapshots
// taken at creation time; they never change even if the referenced
// product is later updated or deleted.
type OrderLine struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed order. Status is the only field mutated
// after creation.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	Products    []OrderLine        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderLineInput is a single requested line item.
type OrderLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the request payload for creating an order.
type OrderRequest struct {
	Email       string           `json:"email"`
	Products    []OrderLineInput `json:"products"`
	TotalAmount float64          `json:"totalAmount"`
}
