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

// ProjectUpdate transporta os campos substituíveis de um projeto.
// IsActive a nil mantém o valor guardado.
type ProjectUpdate struct {
	Title        string
	Description  string
	Category     string
	ImageURL     string
	Technologies []string
	GithubURL    string
	LiveURL      string
	IsActive     *bool
}

// ProjectRepository define o contrato de persistência de projetos.
type ProjectRepository interface {
	ListActive(ctx context.Context) ([]domain.Project, error)
	ListActiveByCategory(ctx context.Context, category string) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	Create(ctx context.Context, project domain.Project) error
	Update(ctx context.Context, id string, update ProjectUpdate) (domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// MongoProjectRepository implementa ProjectRepository sobre a coleção "projects".
type MongoProjectRepository struct {
	coll *mongo.Collection
}

func NewMongoProjectRepository(database *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{coll: database.Collection("projects")}
}

func (r *MongoProjectRepository) ListActive(ctx context.Context) ([]domain.Project, error) {
	return r.list(ctx, bson.M{"isActive": true})
}

func (r *MongoProjectRepository) ListActiveByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	return r.list(ctx, bson.M{"isActive": true, "category": category})
}

func (r *MongoProjectRepository) list(ctx context.Context, filter bson.M) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *MongoProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Project{}, err
	}
	var project domain.Project
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	return project, err
}

func (r *MongoProjectRepository) Create(ctx context.Context, project domain.Project) error {
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

func (r *MongoProjectRepository) Update(ctx context.Context, id string, update ProjectUpdate) (domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Project{}, err
	}

	set := bson.M{
		"title":        update.Title,
		"description":  update.Description,
		"category":     update.Category,
		"imageUrl":     update.ImageURL,
		"technologies": update.Technologies,
		"githubUrl":    update.GithubURL,
		"liveUrl":      update.LiveURL,
		"updatedAt":    time.Now().UTC(),
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var project domain.Project
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&project)
	return project, err
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
}
