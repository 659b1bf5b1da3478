package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/bereketsol/Reelbite/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InteractionRepository represents the MongoDB implementation of the
// IInteractionRepository interface. The interactions collection is the
// authoritative like/save membership set.
type InteractionRepository struct {
	collection *mongo.Collection
}

// NewInteractionRepository creates and returns a new InteractionRepository instance.
func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{collection: db.Collection("interactions")}
}

// EnsureIndexes creates the unique compound index on (user_id, food_id, kind).
// With the index in place, at most one of two concurrent inserts for the same
// triple can win; the loser gets a duplicate-key error.
func (r *InteractionRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "food_id", Value: 1},
			{Key: "kind", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create interaction index: %w", err)
	}
	return nil
}

// Insert creates a new interaction record. Returns
// entity.ErrDuplicateInteraction when the unique index rejects the write.
func (r *InteractionRepository) Insert(ctx context.Context, interaction *entity.Interaction) error {
	interaction.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, interaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateInteraction
		}
		return fmt.Errorf("failed to insert interaction record: %w", err)
	}
	return nil
}

// Delete removes the interaction record for the given triple and reports
// whether a record was actually removed.
func (r *InteractionRepository) Delete(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (bool, error) {
	filter := bson.M{"user_id": userID, "food_id": foodID, "kind": kind}
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete interaction record: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Exists reports whether an active interaction record exists for the triple.
func (r *InteractionRepository) Exists(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (bool, error) {
	filter := bson.M{"user_id": userID, "food_id": foodID, "kind": kind}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check interaction record: %w", err)
	}
	return count > 0, nil
}

// ListFoodIDsByUserAndKind returns the food IDs the user has an active
// interaction of the given kind on, in record insertion order.
func (r *InteractionRepository) ListFoodIDsByUserAndKind(ctx context.Context, userID string, kind entity.InteractionKind) ([]string, error) {
	filter := bson.M{"user_id": userID, "kind": kind}
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list interaction records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []entity.Interaction
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode interaction records: %w", err)
	}
	foodIDs := make([]string, 0, len(records))
	for _, rec := range records {
		foodIDs = append(foodIDs, rec.FoodID)
	}
	return foodIDs, nil
}

// CountByFoodAndKind counts the active records of a kind for a food item.
// The denormalized counter on the food document should always equal this.
func (r *InteractionRepository) CountByFoodAndKind(ctx context.Context, foodID string, kind entity.InteractionKind) (int64, error) {
	filter := bson.M{"food_id": foodID, "kind": kind}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count interaction records: %w", err)
	}
	return count, nil
}
