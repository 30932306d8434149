// internal/repository/mongo/plan_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoPlanRepository implements repository.PlanRepository.
//
// Switching the active plan runs in a multi-document transaction, so the
// deployment must be a replica set. The partial unique index on
// {user_id} where attivo=true backs the one-active-plan rule.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// CreateActive deactivates the user's plans and inserts plan as active, in one transaction.
func (r *mongoPlanRepository) CreateActive(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.UserID == "" || plan.Name == "" {
		return errors.New("plan requires user id and name")
	}
	plan.ID = domain.NewID(domain.PrefixPlan)
	now := millis(time.Now())
	plan.CreatedAt = now
	plan.UpdatedAt = now
	plan.Active = true

	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.deactivateAll(sc, plan.UserID, "", now); err != nil {
			return err
		}
		_, err := r.collection.InsertOne(sc, plan)
		return err
	})
}

// Activate makes planID the only active plan of userID, in one transaction.
func (r *mongoPlanRepository) Activate(ctx context.Context, userID, planID string) error {
	now := millis(time.Now())
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := r.collection.CountDocuments(sc, bson.M{"_id": planID, "user_id": userID})
		if err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		if err := r.deactivateAll(sc, userID, planID, now); err != nil {
			return err
		}
		_, err = r.collection.UpdateOne(sc,
			bson.M{"_id": planID, "user_id": userID},
			bson.M{"$set": bson.M{"attivo": true, "updatedAt": now}},
		)
		return err
	})
}

func (r *mongoPlanRepository) deactivateAll(ctx context.Context, userID, exceptID string, now time.Time) error {
	filter := bson.M{"user_id": userID, "attivo": true}
	if exceptID != "" {
		filter["_id"] = bson.M{"$ne": exceptID}
	}
	update := bson.M{"$set": bson.M{"attivo": false, "updatedAt": now}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

func (r *mongoPlanRepository) inTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrConflict
	}
	return err
}

func (r *mongoPlanRepository) GetByID(ctx context.Context, userID, planID string) (*domain.WorkoutPlan, error) {
	return r.findOne(ctx, bson.M{"_id": planID, "user_id": userID})
}

func (r *mongoPlanRepository) GetActive(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "attivo": true})
}

func (r *mongoPlanRepository) findOne(ctx context.Context, filter bson.M) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListByUser returns the user's plans, newest first.
func (r *mongoPlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []domain.WorkoutPlan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoPlanRepository) UpdateDays(ctx context.Context, userID, planID string, days []domain.PlanDay) error {
	update := bson.M{
		"$set": bson.M{
			"giorni":    days,
			"updatedAt": millis(time.Now()),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": planID, "user_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePlanIndexes creates necessary indexes. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("one_active_plan_per_user").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"attivo": true}),
		},
	})
}
