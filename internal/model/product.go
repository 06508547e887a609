package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the product category enum.
type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
	CategoryKids  Category = "kids"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids:
		return true
	}
	return false
}

// Product represents a catalog item. Rating is nil when unrated.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    Category           `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Size        string             `bson:"size" json:"size"`
	Brand       string             `bson:"brand" json:"brand"`
	Color       string             `bson:"color" json:"color"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProductInput carries the typed fields for product create/update.
// Image is the resolved source: an uploaded file path or an external URL.
type ProductInput struct {
	Name        string
	Price       float64
	Category    Category
	Description string
	Image       string
	Size        string
	Brand       string
	Color       string
	Rating      *float64
}

// ProductFilter holds the optional catalog list predicates.
// A zero value (or nil pointer field) imposes no constraint.
type ProductFilter struct {
	Category  string
	Size      string
	Brand     string
	Color     string
	MinRating *float64
	PriceMin  *float64
	PriceMax  *float64
}
