package mongo

import (
	"context"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoChallengeRepository struct {
	collection *mongo.Collection
}

func NewMongoChallengeRepository(db *mongo.Database) repository.ChallengeRepository {
	return &mongoChallengeRepository{
		collection: db.Collection(challengeCollectionName),
	}
}

func (r *mongoChallengeRepository) CreateMany(ctx context.Context, challenges []domain.Challenge) error {
	if len(challenges) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(challenges))
	for i := range challenges {
		challenges[i].CreatedAt = millis(challenges[i].CreatedAt)
		challenges[i].ExpiresAt = millis(challenges[i].ExpiresAt)
		docs = append(docs, challenges[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// ListByUser returns every challenge of the user, newest first.
func (r *mongoChallengeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Challenge, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *mongoChallengeRepository) ListPending(ctx context.Context, userID string) ([]domain.Challenge, error) {
	return r.find(ctx, bson.M{"user_id": userID, "completata": false, "scaduta": false})
}

func (r *mongoChallengeRepository) find(ctx context.Context, filter bson.M) ([]domain.Challenge, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	challenges := []domain.Challenge{}
	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// UpdateProgress only matches documents that are still pending, so a
// completed or expired challenge is never written again.
func (r *mongoChallengeRepository) UpdateProgress(ctx context.Context, ch *domain.Challenge) (bool, error) {
	filter := bson.M{
		"_id":        ch.ID,
		"user_id":    ch.UserID,
		"completata": false,
		"scaduta":    false,
	}
	set := bson.M{
		"current_value": ch.CurrentValue,
		"completata":    ch.Completed,
		"scaduta":       ch.Expired,
	}
	if ch.CompletedAt != nil {
		set["completata_il"] = millis(*ch.CompletedAt)
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// EnsureChallengeIndexes creates necessary indexes for the challenges collection.
func EnsureChallengeIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "completata", Value: 1}, {Key: "scaduta", Value: 1}},
			Options: options.Index(),
		},
	})
}
