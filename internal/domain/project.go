package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Category     string             `json:"category" bson:"category"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	Technologies []string           `json:"technologies,omitempty" bson:"technologies,omitempty"`
	GithubURL    string             `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	LiveURL      string             `json:"liveUrl,omitempty" bson:"liveUrl,omitempty"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
