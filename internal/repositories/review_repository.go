package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"matchmate_backend/internal/models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
}

type ReviewRepositoryImpl struct {
	reviews *mongo.Collection
}

func NewReviewRepository(reviews *mongo.Collection) ReviewRepository {
	return &ReviewRepositoryImpl{reviews: reviews}
}

func (r *ReviewRepositoryImpl) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	res, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
