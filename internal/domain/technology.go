package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categorias aceites: Frontend, Backend, Database, DevOps, Mobile, Other.
// Níveis aceites: Beginner, Intermediate, Advanced, Expert.
const DefaultProficiencyLevel = "Intermediate"

type Technology struct {
	ID               primitive.ObjectID `json:"id" bson:"_id"`
	Name             string             `json:"name" bson:"name"`
	Logo             string             `json:"logo,omitempty" bson:"logo,omitempty"`
	Category         string             `json:"category" bson:"category"`
	ProficiencyLevel string             `json:"proficiencyLevel" bson:"proficiencyLevel"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
