package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"matchmate_backend/internal/models"
)

var (
	ErrRequestNotFound = errors.New("contact request not found")
)

type ContactRequestRepository interface {
	Insert(ctx context.Context, req *models.ContactRequest) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ContactRequest, error)
	FindByApplicant(ctx context.Context, email string) ([]models.ContactRequest, error)
	Delete(ctx context.Context, id primitive.ObjectID) (deleted int64, err error)

	// Admin side
	FindAll(ctx context.Context) ([]models.ContactRequest, error)
	Approve(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	CountPending(ctx context.Context) (int64, error)
	SumAmount(ctx context.Context) (float64, error)
}

type ContactRequestRepositoryImpl struct {
	requests *mongo.Collection
}

func NewContactRequestRepository(requests *mongo.Collection) ContactRequestRepository {
	return &ContactRequestRepositoryImpl{requests: requests}
}

func (r *ContactRequestRepositoryImpl) Insert(ctx context.Context, req *models.ContactRequest) (primitive.ObjectID, error) {
	// Every submission starts over at pending, whatever the caller sent.
	req.Status = models.RequestStatusPending

	res, err := r.requests.InsertOne(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *ContactRequestRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ContactRequest, error) {
	var req models.ContactRequest
	err := r.requests.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *ContactRequestRepositoryImpl) FindByApplicant(ctx context.Context, email string) ([]models.ContactRequest, error) {
	cursor, err := r.requests.Find(ctx, bson.D{{Key: "ApplicantEmail", Value: email}})
	if err != nil {
		return nil, err
	}
	requests := []models.ContactRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ContactRequestRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.requests.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ContactRequestRepositoryImpl) FindAll(ctx context.Context) ([]models.ContactRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.requests.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	requests := []models.ContactRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve moves a request to approved from any status; re-approving an
// approved request matches without modifying, which keeps the transition
// idempotent.
func (r *ContactRequestRepositoryImpl) Approve(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	res, err := r.requests.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: models.RequestStatusApproved}}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *ContactRequestRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	return r.requests.CountDocuments(ctx, bson.D{{Key: "status", Value: models.RequestStatusPending}})
}

func (r *ContactRequestRepositoryImpl) SumAmount(ctx context.Context) (float64, error) {
	cursor, err := r.requests.Aggregate(ctx, RevenuePipeline())
	if err != nil {
		return 0, err
	}

	var results []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalAmount, nil
}
