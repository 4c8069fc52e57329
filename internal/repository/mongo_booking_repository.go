package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/detailersedge/backend/internal/model"
)

// BookingRepository defines the persistence interface for bookings.
type BookingRepository interface {
	// Insert stores a new booking and populates b.ID.
	Insert(ctx context.Context, b *model.Booking) error

	// List returns bookings matching the admin filters, newest first.
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)

	// UpdateStatus changes a booking's status and stamps UpdatedAt.
	// Returns ErrNotFound when id does not resolve to a document.
	UpdateStatus(ctx context.Context, id, status string) error
}

// MongoBookingRepository is the MongoDB implementation of BookingRepository.
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a repository bound to the given
// collection.
func NewMongoBookingRepository(db *mongo.Database, collection string) *MongoBookingRepository {
	return &MongoBookingRepository{collection: db.Collection(collection)}
}

// Ensure MongoBookingRepository implements BookingRepository.
var _ BookingRepository = (*MongoBookingRepository)(nil)

type bookingDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	ServiceType string             `bson:"serviceType"`
	ScheduledAt time.Time          `bson:"scheduledAt"`
	Notes       string             `bson:"notes,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

func (d bookingDocument) toModel() *model.Booking {
	b := &model.Booking{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		ServiceType: d.ServiceType,
		ScheduledAt: d.ScheduledAt,
		Notes:       d.Notes,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
	if d.UpdatedAt != nil {
		b.UpdatedAt = *d.UpdatedAt
	}
	return b
}

func (r *MongoBookingRepository) Insert(ctx context.Context, b *model.Booking) error {
	doc := bookingDocument{
		ID:          primitive.NewObjectID(),
		Name:        b.Name,
		Email:       b.Email,
		ServiceType: b.ServiceType,
		ScheduledAt: b.ScheduledAt,
		Notes:       b.Notes,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	b.ID = doc.ID.Hex()
	return nil
}

func (r *MongoBookingRepository) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	filter := bson.M{}
	if status := strings.TrimSpace(opts.Status); status != "" && status != "all" {
		filter["status"] = status
	}
	if email := strings.TrimSpace(opts.ClientEmail); email != "" {
		filter["email"] = email
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]*model.Booking, 0)
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		bookings = append(bookings, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
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
