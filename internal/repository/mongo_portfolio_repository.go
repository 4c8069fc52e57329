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

// PortfolioRepository defines the persistence interface for portfolio image
// metadata. The blobs themselves live behind storage.Storage.
type PortfolioRepository interface {
	List(ctx context.Context) ([]*model.PortfolioImage, error)

	// GetByID returns ErrNotFound when id does not resolve to a document.
	GetByID(ctx context.Context, id string) (*model.PortfolioImage, error)

	// Insert stores metadata for a freshly uploaded image and populates
	// img.ID.
	Insert(ctx context.Context, img *model.PortfolioImage) error

	Delete(ctx context.Context, id string) error
}

// MongoPortfolioRepository is the MongoDB implementation of
// PortfolioRepository.
type MongoPortfolioRepository struct {
	collection *mongo.Collection
}

// NewMongoPortfolioRepository creates a repository bound to the given
// collection.
func NewMongoPortfolioRepository(db *mongo.Database, collection string) *MongoPortfolioRepository {
	return &MongoPortfolioRepository{collection: db.Collection(collection)}
}

// Ensure MongoPortfolioRepository implements PortfolioRepository.
var _ PortfolioRepository = (*MongoPortfolioRepository)(nil)

type portfolioDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	URL        string             `bson:"url"`
	Title      string             `bson:"title"`
	StorageKey string             `bson:"storageKey"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d portfolioDocument) toModel() *model.PortfolioImage {
	return &model.PortfolioImage{
		ID:         d.ID.Hex(),
		URL:        d.URL,
		Title:      d.Title,
		StorageKey: d.StorageKey,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *MongoPortfolioRepository) List(ctx context.Context) ([]*model.PortfolioImage, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	images := make([]*model.PortfolioImage, 0)
	for cursor.Next(ctx) {
		var doc portfolioDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		images = append(images, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *MongoPortfolioRepository) GetByID(ctx context.Context, id string) (*model.PortfolioImage, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrNotFound
	}

	var doc portfolioDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (r *MongoPortfolioRepository) Insert(ctx context.Context, img *model.PortfolioImage) error {
	doc := portfolioDocument{
		ID:         primitive.NewObjectID(),
		URL:        img.URL,
		Title:      img.Title,
		StorageKey: img.StorageKey,
		CreatedAt:  img.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	img.ID = doc.ID.Hex()
	return nil
}

func (r *MongoPortfolioRepository) Delete(ctx context.Context, id string) error {
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
