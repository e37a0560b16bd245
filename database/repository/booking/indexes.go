package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Unique compound index on the booked tuple; no two bookings may
		// ever reference the same slot.
		{
			Keys: bson.D{
				{Key: "year", Value: 1},
				{Key: "month", Value: 1},
				{Key: "day", Value: 1},
				{Key: "slot", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_slot_tuple"),
		},
		// Compound index for the month ledger listing (primary query pattern)
		{
			Keys:    bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("month_timestamp_idx"),
		},
	}

	_, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
