package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/internal/domain"
)

// ContactRepository define o contrato de persistência das mensagens de contacto.
// A coleção é só de escrita: não há leitura, alteração nem remoção pela API.
type ContactRepository interface {
	Create(ctx context.Context, message domain.ContactMessage) error
}

// MongoContactRepository implementa ContactRepository sobre a coleção "contacts".
type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(database *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: database.Collection("contacts")}
}

func (r *MongoContactRepository) Create(ctx context.Context, message domain.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, message)
	return err
}
