package mongo

import (
	"context"

	"waltgoat/walker-app/internal/domain"
	"waltgoat/walker-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// exerciseDocument keeps the catalog position next to the definition, since
// natural order is not guaranteed by the server.
type exerciseDocument struct {
	domain.ExerciseDefinition `bson:",inline"`
	Order                     int `bson:"ordine"`
}

type mongoExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// ListAll returns the stored definitions in catalog order.
func (r *mongoExerciseRepository) ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "ordine", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []exerciseDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	defs := make([]domain.ExerciseDefinition, 0, len(docs))
	for _, d := range docs {
		defs = append(defs, d.ExerciseDefinition)
	}
	return defs, nil
}

func (r *mongoExerciseRepository) SeedIfEmpty(ctx context.Context, defs []domain.ExerciseDefinition) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 || len(defs) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(defs))
	for i, d := range defs {
		docs = append(docs, exerciseDocument{ExerciseDefinition: d, Order: i})
	}
	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// another instance seeded concurrently
			return 0, nil
		}
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "categoria", Value: 1}, {Key: "ordine", Value: 1}},
			Options: options.Index(),
		},
	})
}
