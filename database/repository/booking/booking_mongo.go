package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"mawid/config"
	"mawid/database"
	"mawid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements Repository using MongoDB. It holds both the
// bookings collection and the months collection because the reserve
// transaction must touch the two together.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	monthColl   *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		monthColl:   db.Collection("months"),
	}
}

// ListByMonth retrieves all booking records for a month, newest first.
func (repo *MongoBookingRepo) ListByMonth(ctx context.Context, year, month int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"year": year, "month": month}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s: %w", models.MonthKey(year, month), err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
