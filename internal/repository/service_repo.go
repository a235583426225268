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

// ServiceUpdate transporta os campos substituíveis de um serviço.
type ServiceUpdate struct {
	Title       string
	Description string
	Price       string
	Icon        string
	Link        string
	IsActive    *bool
}

// ServiceRepository define o contrato de persistência de serviços.
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (domain.Service, error)
	Create(ctx context.Context, service domain.Service) error
	Update(ctx context.Context, id string, update ServiceUpdate) (domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// MongoServiceRepository implementa ServiceRepository sobre a coleção "services".
type MongoServiceRepository struct {
	coll *mongo.Collection
}

func NewMongoServiceRepository(database *mongo.Database) *MongoServiceRepository {
	return &MongoServiceRepository{coll: database.Collection("services")}
}

func (r *MongoServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []domain.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *MongoServiceRepository) GetByID(ctx context.Context, id string) (domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Service{}, err
	}
	var service domain.Service
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&service)
	return service, err
}

func (r *MongoServiceRepository) Create(ctx context.Context, service domain.Service) error {
	_, err := r.coll.InsertOne(ctx, service)
	return err
}

func (r *MongoServiceRepository) Update(ctx context.Context, id string, update ServiceUpdate) (domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Service{}, err
	}

	set := bson.M{
		"title":       update.Title,
		"description": update.Description,
		"price":       update.Price,
		"icon":        update.Icon,
		"link":        update.Link,
		"updatedAt":   time.Now().UTC(),
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var service domain.Service
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&service)
	return service, err
}

func (r *MongoServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
}
