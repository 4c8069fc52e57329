package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/detailersedge/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact form
// submissions. Write-only: submissions are reviewed out-of-band.
type ContactRepository interface {
	// Save stores a new submission and populates msg.ID.
	Save(ctx context.Context, msg *model.ContactSubmission) error
}

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a repository bound to the given
// collection.
func NewMongoContactRepository(db *mongo.Database, collection string) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection(collection)}
}

// Ensure MongoContactRepository implements ContactRepository.
var _ ContactRepository = (*MongoContactRepository)(nil)

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactSubmission) error {
	doc := contactDocument{
		ID:        primitive.NewObjectID(),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	msg.ID = doc.ID.Hex()
	return nil
}
