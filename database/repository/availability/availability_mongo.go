package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mawid/config"
	"mawid/database"
	"mawid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements Repository using MongoDB.
type MongoAvailabilityRepo struct {
	monthColl *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAvailabilityRepo{
		monthColl: db.Collection("months"),
	}
}

// GetMonth retrieves the availability document for a month.
func (repo *MongoAvailabilityRepo) GetMonth(ctx context.Context, year, month int) (*models.MonthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.MonthRecord
	filter := bson.M{"_id": models.MonthKey(year, month)}
	if err := repo.monthColl.FindOne(ctx, filter).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching month %s: %w", models.MonthKey(year, month), err)
	}
	return &rec, nil
}

// ReplaceMonth upserts the availability document for a month.
func (repo *MongoAvailabilityRepo) ReplaceMonth(ctx context.Context, rec *models.MonthRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": rec.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.monthColl.ReplaceOne(ctx, filter, rec, opts); err != nil {
		return fmt.Errorf("error replacing month %s: %w", rec.ID, err)
	}
	return nil
}
