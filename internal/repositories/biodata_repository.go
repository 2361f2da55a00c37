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
	ErrBiodataNotFound = errors.New("biodata not found")
)

// SameBioLimit caps the similar-profiles listing.
const SameBioLimit = 3

type BiodataRepository interface {
	// NextBioID advances the biodata sequence atomically and returns the new
	// value. Safe under concurrent creation; the first call returns 1.
	NextBioID(ctx context.Context) (int, error)

	Create(ctx context.Context, bio *models.Biodata) (primitive.ObjectID, error)
	UpdateByEmail(ctx context.Context, email string, bio *models.Biodata) (matched, modified int64, err error)

	FindByEmail(ctx context.Context, email string) (*models.Biodata, error)
	FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Biodata, error)
	FindByBioID(ctx context.Context, bioID int) (*models.Biodata, error)
	FindByType(ctx context.Context, biodataType string) ([]models.Biodata, error)

	CountAll(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, biodataType string) (int64, error)
}

type BiodataRepositoryImpl struct {
	biodata  *mongo.Collection
	counters *mongo.Collection
}

func NewBiodataRepository(biodata, counters *mongo.Collection) BiodataRepository {
	return &BiodataRepositoryImpl{biodata: biodata, counters: counters}
}

func (r *BiodataRepositoryImpl) NextBioID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: models.CounterBioID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: 1}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func (r *BiodataRepositoryImpl) Create(ctx context.Context, bio *models.Biodata) (primitive.ObjectID, error) {
	res, err := r.biodata.InsertOne(ctx, bio)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateByEmail replaces the declared profile field set in place; bioId and
// ownership never change after creation.
func (r *BiodataRepositoryImpl) UpdateByEmail(ctx context.Context, email string, bio *models.Biodata) (int64, int64, error) {
	res, err := r.biodata.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "biodataType", Value: bio.BiodataType},
			{Key: "info", Value: bio.Info},
			{Key: "expectedHeight", Value: bio.ExpectedHeight},
			{Key: "expectedWeight", Value: bio.ExpectedWeight},
			{Key: "partenerAge", Value: bio.PartnerAge},
			{Key: "image", Value: bio.Image},
		}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *BiodataRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *BiodataRepositoryImpl) FindByObjectID(ctx context.Context, id primitive.ObjectID) (*models.Biodata, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *BiodataRepositoryImpl) FindByBioID(ctx context.Context, bioID int) (*models.Biodata, error) {
	return r.findOne(ctx, bson.D{{Key: "bioId", Value: bioID}})
}

func (r *BiodataRepositoryImpl) findOne(ctx context.Context, filter bson.D) (*models.Biodata, error) {
	var bio models.Biodata
	err := r.biodata.FindOne(ctx, filter).Decode(&bio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBiodataNotFound
		}
		return nil, err
	}
	return &bio, nil
}

func (r *BiodataRepositoryImpl) FindByType(ctx context.Context, biodataType string) ([]models.Biodata, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(SameBioLimit)

	cursor, err := r.biodata.Find(ctx, bson.D{{Key: "biodataType", Value: biodataType}}, opts)
	if err != nil {
		return nil, err
	}
	results := []models.Biodata{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *BiodataRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	return r.biodata.CountDocuments(ctx, bson.D{})
}

func (r *BiodataRepositoryImpl) CountByType(ctx context.Context, biodataType string) (int64, error) {
	return r.biodata.CountDocuments(ctx, bson.D{{Key: "biodataType", Value: biodataType}})
}
