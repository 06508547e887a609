package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile holds contact and display data keyed by email. The email is
// a join key to the users collection, not an enforced foreign key.
type Profile struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email   string             `bson:"email" json:"email"`
	Name    string             `bson:"name" json:"name"`
	Phone   string             `bson:"phone" json:"phone"`
	Address string             `bson:"address" json:"address"`
}

// AnalyticsSummary aggregates counters across the stores.
type AnalyticsSummary struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalAdmins   int64   `json:"totalAdmins"`
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
