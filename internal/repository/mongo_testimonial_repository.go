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

// TestimonialRepository defines the persistence interface for testimonials.
// It is defined here (in repository) to avoid an import cycle with service.
type TestimonialRepository interface {
	// Insert stores a new testimonial and populates t.ID.
	Insert(ctx context.Context, t *model.Testimonial) error

	// List returns one page of testimonials ordered by creation time
	// descending, plus the total count matching the filter. Pagination is
	// done by the store (skip/limit), never by slicing a full fetch.
	List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error)

	// UpdateStatus changes a testimonial's status and stamps UpdatedAt.
	// Returns ErrNotFound when id does not resolve to a document.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a testimonial. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// MongoTestimonialRepository is the MongoDB implementation of
// TestimonialRepository.
type MongoTestimonialRepository struct {
	collection *mongo.Collection
}

// NewMongoTestimonialRepository creates a repository bound to the given
// collection.
func NewMongoTestimonialRepository(db *mongo.Database, collection string) *MongoTestimonialRepository {
	return &MongoTestimonialRepository{collection: db.Collection(collection)}
}

// Ensure MongoTestimonialRepository implements TestimonialRepository.
var _ TestimonialRepository = (*MongoTestimonialRepository)(nil)

// testimonialDocument is the bson shape stored in the collection.
type testimonialDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Rating      int                `bson:"rating"`
	Comment     string             `bson:"comment"`
	ServiceType string             `bson:"serviceType,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

func (d testimonialDocument) toModel() *model.Testimonial {
	t := &model.Testimonial{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Rating:      d.Rating,
		Comment:     d.Comment,
		ServiceType: d.ServiceType,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
	if d.UpdatedAt != nil {
		t.UpdatedAt = *d.UpdatedAt
	}
	return t
}

func (r *MongoTestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) error {
	doc := testimonialDocument{
		ID:          primitive.NewObjectID(),
		Name:        t.Name,
		Email:       t.Email,
		Rating:      t.Rating,
		Comment:     t.Comment,
		ServiceType: t.ServiceType,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	t.ID = doc.ID.Hex()
	return nil
}

func (r *MongoTestimonialRepository) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, int64, error) {
	filter := bson.M{}
	if status := strings.TrimSpace(opts.Status); status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if opts.PageSize > 0 {
		findOpts.SetLimit(int64(opts.PageSize))
		if opts.PageNumber > 1 {
			findOpts.SetSkip(int64((opts.PageNumber - 1) * opts.PageSize))
		}
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	testimonials := make([]*model.Testimonial, 0)
	for cursor.Next(ctx) {
		var doc testimonialDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		testimonials = append(testimonials, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return testimonials, total, nil
}

func (r *MongoTestimonialRepository) UpdateStatus(ctx context.Context, id, status string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTestimonialRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
