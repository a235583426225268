package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/domain"
)

// ProfileRepository define o contrato de persistência do perfil único.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, bool, error)
}

// MongoProfileRepository implementa ProfileRepository sobre a coleção "profiles".
type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewMongoProfileRepository(database *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: database.Collection("profiles")}
}

func (r *MongoProfileRepository) Get(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&profile)
	return profile, err
}

// Upsert grava o perfil num único UpdateOne com upsert sobre o filtro vazio,
// para que duas criações concorrentes nunca produzam dois documentos.
// Devolve true quando o documento foi inserido agora.
func (r *MongoProfileRepository) Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, bool, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":              profile.Name,
			"title":             profile.Title,
			"bio":               profile.Bio,
			"email":             profile.Email,
			"phone":             profile.Phone,
			"location":          profile.Location,
			"linkedin":          profile.Linkedin,
			"github":            profile.Github,
			"yearsOfExperience": profile.YearsOfExperience,
			"projectsCompleted": profile.ProjectsCompleted,
			"certifications":    profile.Certifications,
			"awards":            profile.Awards,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return domain.Profile{}, false, err
	}

	stored, err := r.Get(ctx)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return stored, res.UpsertedCount > 0, nil
}
