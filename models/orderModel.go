package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusPending is the only order status current flows ever assign.
const StatusPending = "Pending"

// OrderItem is a snapshot of a cart line; name and price are copied by value,
// so later menu edits or deletions never touch historical orders.
type OrderItem struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Qty   int     `json:"qty" bson:"qty"`
}

type Order struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
