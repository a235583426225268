package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile é o documento único com os dados pessoais do portfólio.
// Existe no máximo um por base de dados.
type Profile struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	Name              string             `json:"name" bson:"name"`
	Title             string             `json:"title" bson:"title"`
	Bio               string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Email             string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone             string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Location          string             `json:"location,omitempty" bson:"location,omitempty"`
	Linkedin          string             `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Github            string             `json:"github,omitempty" bson:"github,omitempty"`
	YearsOfExperience int                `json:"yearsOfExperience" bson:"yearsOfExperience"`
	ProjectsCompleted int                `json:"projectsCompleted" bson:"projectsCompleted"`
	Certifications    int                `json:"certifications" bson:"certifications"`
	Awards            int                `json:"awards" bson:"awards"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}
