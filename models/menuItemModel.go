package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed category labels the menu filter buttons work against.
const (
	CategoryStarters   = "Starters"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
	CategoryBeverages  = "Beverages"
)

// Categories lists every selectable menu category.
var Categories = []string{CategoryStarters, CategoryMainCourse, CategoryDesserts, CategoryBeverages}

type MenuItem struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        *string            `json:"name" bson:"name" validate:"required,min=1"`
	Price       *float64           `json:"price" bson:"price" validate:"required,gte=0"`
	Category    *string            `json:"category" bson:"category" validate:"required,oneof=Starters 'Main Course' Desserts Beverages"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsAvailable *bool              `json:"isAvailable" bson:"isAvailable"`
}

// ApplyDefaults fills schema defaults for fields absent from a payload.
func (m *MenuItem) ApplyDefaults() {
	if m.IsAvailable == nil {
		available := true
		m.IsAvailable = &available
	}
}
