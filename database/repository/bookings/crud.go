package bookingsRepo

import (
	"context"
	"time"

	"wayfare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Append inserts a booking record and returns its confirmation text.
// InsertOne is atomic, so concurrent appends from different sessions cannot
// corrupt or drop records.
func (r *mongoBookingRepo) Append(ctx context.Context, booking models.Booking) (string, error) {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.Confirmation(), nil
}

// ListAll returns every booking record in insertion order.
func (r *mongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
