package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/detailersedge/backend/internal/model"
)

// ServiceRepository defines the persistence interface for the services
// catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)

	// GetByID returns ErrNotFound when id does not resolve to a document.
	GetByID(ctx context.Context, id string) (*model.Service, error)

	// Insert stores a new catalog entry and populates svc.ID.
	Insert(ctx context.Context, svc *model.Service) error

	// Update replaces the mutable fields of an existing entry. An empty
	// input.ImageURL leaves the stored image untouched.
	Update(ctx context.Context, id string, input model.ServiceInput) error

	Delete(ctx context.Context, id string) error
}

// MongoServiceRepository is the MongoDB implementation of ServiceRepository.
type MongoServiceRepository struct {
	collection *mongo.Collection
}

// NewMongoServiceRepository creates a repository bound to the given
// collection.
func NewMongoServiceRepository(db *mongo.Database, collection string) *MongoServiceRepository {
	return &MongoServiceRepository{collection: db.Collection(collection)}
}

// Ensure MongoServiceRepository implements ServiceRepository.
var _ ServiceRepository = (*MongoServiceRepository)(nil)

type serviceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       string             `bson:"price"`
	Features    []string           `bson:"features"`
	ImageURL    string             `bson:"image,omitempty"`
	ImageKey    string             `bson:"imageKey,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

func (d serviceDocument) toModel() *model.Service {
	svc := &model.Service{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Features:    d.Features,
		ImageURL:    d.ImageURL,
		ImageKey:    d.ImageKey,
		CreatedAt:   d.CreatedAt,
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if d.UpdatedAt != nil {
		svc.UpdatedAt = *d.UpdatedAt
	}
	return svc
}

func (r *MongoServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]*model.Service, 0)
	for cursor.Next(ctx) {
		var doc serviceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		services = append(services, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *MongoServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrNotFound
	}

	var doc serviceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoServiceRepository) Insert(ctx context.Context, svc *model.Service) error {
	doc := serviceDocument{
		ID:          primitive.NewObjectID(),
		Title:       svc.Title,
		Description: svc.Description,
		Price:       svc.Price,
		Features:    svc.Features,
		ImageURL:    svc.ImageURL,
		ImageKey:    svc.ImageKey,
		CreatedAt:   svc.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	svc.ID = doc.ID.Hex()
	return nil
}

func (r *MongoServiceRepository) Update(ctx context.Context, id string, input model.ServiceInput) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{
		"title":       input.Title,
		"description": input.Description,
		"price":       input.Price,
		"features":    input.Features,
		"updatedAt":   time.Now().UTC(),
	}
	if input.ImageURL != "" {
		set["image"] = input.ImageURL
		set["imageKey"] = input.ImageKey
	}

	result, err := r.collection.UpdateByID(ctx, objectID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
