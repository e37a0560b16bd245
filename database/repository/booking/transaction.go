package bookingRepo

import (
	"context"
	"fmt"

	"mawid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reserve removes the booked slot from the month document and appends the
// booking record inside one mongo transaction. The slot removal is a
// conditional update: the filter only matches while the slot is still
// present in the day's slot list, so only one of any number of concurrent
// callers observes MatchedCount == 1 and commits. Everyone else gets
// models.ErrSlotTaken and no write survives.
func (repo *MongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"_id": models.MonthKey(booking.Year, booking.Month),
			"days": bson.M{
				"$elemMatch": bson.M{
					"day":   booking.Day,
					"slots": booking.Slot,
				},
			},
		}
		update := bson.M{
			"$pull": bson.M{"days.$.slots": booking.Slot},
		}

		res, err := repo.monthColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("remove slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return models.ErrSlotTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			// The unique tuple index backstops the conditional update.
			if mongo.IsDuplicateKeyError(err) {
				return models.ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
