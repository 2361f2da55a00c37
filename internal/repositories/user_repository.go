package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"matchmate_backend/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)

	// Membership workflow
	SetMembershipPending(ctx context.Context, email string, bioID int, reqName string) (matched, modified int64, err error)
	MarkRegistered(ctx context.Context, email string) error
	ApprovePremium(ctx context.Context, id primitive.ObjectID, at time.Time) (matched, modified int64, err error)
	MakeAdmin(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)

	// Admin reads
	FindPendingRequests(ctx context.Context) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	CountPremium(ctx context.Context) (int64, error)

	// Aggregated read-side view
	PremiumListing(ctx context.Context, sortDir int) ([]bson.M, error)
}

type UserRepositoryImpl struct {
	users *mongo.Collection
}

func NewUserRepository(users *mongo.Collection) UserRepository {
	return &UserRepositoryImpl{users: users}
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *UserRepositoryImpl) SetMembershipPending(ctx context.Context, email string, bioID int, reqName string) (int64, int64, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "type", Value: models.MembershipPending},
			{Key: "bioId", Value: bioID},
			{Key: "reqName", Value: reqName},
		}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *UserRepositoryImpl) MarkRegistered(ctx context.Context, email string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: models.UserStatusRegistered}}}},
	)
	return err
}

func (r *UserRepositoryImpl) ApprovePremium(ctx context.Context, id primitive.ObjectID, at time.Time) (int64, int64, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "type", Value: models.MembershipPremium},
			{Key: "makeDate", Value: at},
		}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *UserRepositoryImpl) MakeAdmin(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.UserRoleAdmin}}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *UserRepositoryImpl) FindPendingRequests(ctx context.Context) ([]models.User, error) {
	cursor, err := r.users.Find(ctx, bson.D{{Key: "type", Value: models.MembershipPending}})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) CountPremium(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.D{{Key: "type", Value: models.MembershipPremium}})
}

func (r *UserRepositoryImpl) PremiumListing(ctx context.Context, sortDir int) ([]bson.M, error) {
	cursor, err := r.users.Aggregate(ctx, PremiumListingPipeline(sortDir))
	if err != nil {
		return nil, err
	}
	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
