package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/bereketsol/Reelbite/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FoodPartnerRepository struct {
	collection *mongo.Collection
}

func NewFoodPartnerRepository(db *mongo.Database) *FoodPartnerRepository {
	return &FoodPartnerRepository{collection: db.Collection("food_partners")}
}

func (r *FoodPartnerRepository) CreatePartner(ctx context.Context, partner *entity.FoodPartner) error {
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = partner.CreatedAt
	_, err := r.collection.InsertOne(ctx, partner)
	return err
}

func (r *FoodPartnerRepository) GetPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error) {
	var partner entity.FoodPartner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *FoodPartnerRepository) GetPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error) {
	var partner entity.FoodPartner
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}
