package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bereketsol/Reelbite/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodRepository represents the MongoDB implementation of the IFoodRepository interface.
type FoodRepository struct {
	collection *mongo.Collection
}

// NewFoodRepository creates and returns a new FoodRepository instance.
func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{collection: db.Collection("foods")}
}

// CreateFood inserts a new food record into the database.
func (r *FoodRepository) CreateFood(ctx context.Context, food *entity.Food) error {
	food.CreatedAt = time.Now()
	food.UpdatedAt = food.CreatedAt
	if _, err := r.collection.InsertOne(ctx, food); err != nil {
		return fmt.Errorf("failed to insert food record: %w", err)
	}
	return nil
}

// GetFoodByID retrieves a food item by its ID.
func (r *FoodRepository) GetFoodByID(ctx context.Context, foodID string) (*entity.Food, error) {
	var food entity.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": foodID}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to retrieve food item: %w", err)
	}
	return &food, nil
}

// ListFoods returns every food item in insertion order.
func (r *FoodRepository) ListFoods(ctx context.Context) ([]entity.Food, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entity.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}

// GetFoodsByIDs returns the food items for the given IDs, preserving the order
// of the input slice. IDs with no matching item are skipped.
func (r *FoodRepository) GetFoodsByIDs(ctx context.Context, foodIDs []string) ([]entity.Food, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": foodIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch food items: %w", err)
	}
	defer cursor.Close(ctx)

	var fetched []entity.Food
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}

	byID := make(map[string]entity.Food, len(fetched))
	for _, f := range fetched {
		byID[f.ID] = f
	}
	foods := make([]entity.Food, 0, len(foodIDs))
	for _, id := range foodIDs {
		if f, ok := byID[id]; ok {
			foods = append(foods, f)
		}
	}
	return foods, nil
}

// ListFoodsByPartnerID returns every food item owned by the given partner.
func (r *FoodRepository) ListFoodsByPartnerID(ctx context.Context, partnerID string) ([]entity.Food, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"food_partner_id": partnerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner food items: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entity.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}

// ApplyCounterDelta atomically adjusts the counter for the given kind with a
// single $inc and returns the post-delta value. The delta happens server-side,
// so concurrent toggles from different users cannot lose updates.
func (r *FoodRepository) ApplyCounterDelta(ctx context.Context, foodID string, kind entity.InteractionKind, delta int64) (int64, error) {
	field := counterField(kind)
	update := bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var food entity.Food
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": foodID}, update, opts).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, entity.ErrFoodNotFound
		}
		return 0, fmt.Errorf("failed to apply counter delta: %w", err)
	}

	if kind == entity.InteractionKindSave {
		return food.SaveCount, nil
	}
	return food.LikeCount, nil
}

func counterField(kind entity.InteractionKind) string {
	if kind == entity.InteractionKindSave {
		return "save_count"
	}
	return "like_count"
}
