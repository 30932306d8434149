package mongo

import (
	"context"
	"errors"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoSessionRepository keeps walks and circuits in two collections sharing
// the same query shape.
type mongoSessionRepository struct {
	walks    *mongo.Collection
	circuits *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		walks:    db.Collection(walkCollectionName),
		circuits: db.Collection(circuitCollectionName),
	}
}

func (r *mongoSessionRepository) CreateWalk(ctx context.Context, walk *domain.WalkSession) error {
	if walk.UserID == "" {
		return errors.New("walk requires a user id")
	}
	walk.ID = domain.NewID(domain.PrefixWalk)
	walk.Date = millis(walk.Date)
	_, err := r.walks.InsertOne(ctx, walk)
	return err
}

func (r *mongoSessionRepository) CreateCircuit(ctx context.Context, circuit *domain.CircuitSession) error {
	if circuit.UserID == "" {
		return errors.New("circuit requires a user id")
	}
	circuit.ID = domain.NewID(domain.PrefixCircuit)
	circuit.Date = millis(circuit.Date)
	_, err := r.circuits.InsertOne(ctx, circuit)
	return err
}

func (r *mongoSessionRepository) GetWalkByID(ctx context.Context, userID, walkID string) (*domain.WalkSession, error) {
	var walk domain.WalkSession
	err := r.walks.FindOne(ctx, bson.M{"_id": walkID, "user_id": userID}).Decode(&walk)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &walk, nil
}

func (r *mongoSessionRepository) ListWalks(ctx context.Context, userID string, q repository.SessionQuery) ([]domain.WalkSession, error) {
	walks := []domain.WalkSession{}
	if err := findSessions(ctx, r.walks, userID, q, &walks); err != nil {
		return nil, err
	}
	return walks, nil
}

func (r *mongoSessionRepository) ListCircuits(ctx context.Context, userID string, q repository.SessionQuery) ([]domain.CircuitSession, error) {
	circuits := []domain.CircuitSession{}
	if err := findSessions(ctx, r.circuits, userID, q, &circuits); err != nil {
		return nil, err
	}
	return circuits, nil
}

// findSessions runs the shared "by user, newest first, capped" query.
func findSessions(ctx context.Context, collection *mongo.Collection, userID string, q repository.SessionQuery, out interface{}) error {
	filter := bson.M{"user_id": userID}
	if q.Since != nil {
		filter["data"] = bson.M{"$gte": millis(*q.Since)}
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "data", Value: -1}})
	if q.Limit > 0 {
		findOptions.SetLimit(int64(q.Limit))
	}

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// EnsureSessionIndexes creates the per-user timeline index on both collections.
func EnsureSessionIndexes(ctx context.Context, walks, circuits *mongo.Collection) {
	timeline := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "data", Value: -1}},
			Options: options.Index(),
		},
	}
	createIndexes(ctx, walks, timeline)
	createIndexes(ctx, circuits, timeline)
}
