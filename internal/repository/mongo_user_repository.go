package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/detailersedge/backend/internal/model"
)

// UserRepository defines the persistence interface for customer profiles.
// Profiles are keyed by the identity provider's subject id, so _id is a
// plain string rather than an ObjectID.
type UserRepository interface {
	// Get returns ErrNotFound when no profile exists for uid.
	Get(ctx context.Context, uid string) (*model.UserProfile, error)

	// Insert stores a freshly created profile.
	Insert(ctx context.Context, profile *model.UserProfile) error

	// Update applies the caller-editable fields and stamps UpdatedAt.
	// Returns ErrNotFound when no profile exists for uid.
	Update(ctx context.Context, uid string, update model.ProfileUpdate) error
}

// MongoUserRepository is the MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a repository bound to the given collection.
func NewMongoUserRepository(db *mongo.Database, collection string) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(collection)}
}

// Ensure MongoUserRepository implements UserRepository.
var _ UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) Get(ctx context.Context, uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *MongoUserRepository) Update(ctx context.Context, uid string, update model.ProfileUpdate) error {
	set := bson.M{"$set": bson.M{
		"displayName": update.DisplayName,
		"phoneNumber": update.PhoneNumber,
		"updatedAt":   time.Now().UTC(),
	}}
	result, err := r.collection.UpdateByID(ctx, uid, set)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
