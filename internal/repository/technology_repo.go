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

// TechnologyUpdate transporta os campos substituíveis de uma tecnologia.
type TechnologyUpdate struct {
	Name             string
	Logo             string
	Category         string
	ProficiencyLevel string
	IsActive         *bool
}

// TechnologyRepository define o contrato de persistência de tecnologias.
type TechnologyRepository interface {
	ListActive(ctx context.Context) ([]domain.Technology, error)
	ListActiveByCategory(ctx context.Context, category string) ([]domain.Technology, error)
	GetByID(ctx context.Context, id string) (domain.Technology, error)
	Create(ctx context.Context, technology domain.Technology) error
	Update(ctx context.Context, id string, update TechnologyUpdate) (domain.Technology, error)
	Delete(ctx context.Context, id string) error
}

// MongoTechnologyRepository implementa TechnologyRepository sobre a coleção "technologies".
type MongoTechnologyRepository struct {
	coll *mongo.Collection
}

func NewMongoTechnologyRepository(database *mongo.Database) *MongoTechnologyRepository {
	return &MongoTechnologyRepository{coll: database.Collection("technologies")}
}

func (r *MongoTechnologyRepository) ListActive(ctx context.Context) ([]domain.Technology, error) {
	return r.list(ctx, bson.M{"isActive": true})
}

func (r *MongoTechnologyRepository) ListActiveByCategory(ctx context.Context, category string) ([]domain.Technology, error) {
	return r.list(ctx, bson.M{"isActive": true, "category": category})
}

func (r *MongoTechnologyRepository) list(ctx context.Context, filter bson.M) ([]domain.Technology, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	technologies := []domain.Technology{}
	if err := cursor.All(ctx, &technologies); err != nil {
		return nil, err
	}
	return technologies, nil
}

func (r *MongoTechnologyRepository) GetByID(ctx context.Context, id string) (domain.Technology, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Technology{}, err
	}
	var technology domain.Technology
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&technology)
	return technology, err
}

func (r *MongoTechnologyRepository) Create(ctx context.Context, technology domain.Technology) error {
	_, err := r.coll.InsertOne(ctx, technology)
	return err
}

func (r *MongoTechnologyRepository) Update(ctx context.Context, id string, update TechnologyUpdate) (domain.Technology, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Technology{}, err
	}

	set := bson.M{
		"name":             update.Name,
		"logo":             update.Logo,
		"category":         update.Category,
		"proficiencyLevel": update.ProficiencyLevel,
		"updatedAt":        time.Now().UTC(),
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var technology domain.Technology
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&technology)
	return technology, err
}

func (r *MongoTechnologyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
}
