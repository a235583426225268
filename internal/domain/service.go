package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valores por omissão dos serviços, herdados do site.
const (
	DefaultServicePrice = "Custom Quote"
	DefaultServiceIcon  = "bi-gear"
	DefaultServiceLink  = "#"
)

type Service struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       string             `json:"price" bson:"price"`
	Icon        string             `json:"icon" bson:"icon"`
	Link        string             `json:"link" bson:"link"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
