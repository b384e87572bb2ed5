package bookingsRepo

import (
	"context"

	"wayfare/database"
	"wayfare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the durable, append-only store for completed bookings.
// Append must be durable before it returns; ListAll reflects every prior
// successful Append. IDs are generated by the caller, never by the store.
type BookingRepository interface {
	Append(ctx context.Context, booking models.Booking) (string, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("wayfare")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
