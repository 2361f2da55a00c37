package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"matchmate_backend/internal/models"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteRepository interface {
	FindPair(ctx context.Context, email, serverID string) (*models.Favorite, error)
	Insert(ctx context.Context, fav *models.Favorite) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Favorite, error)
	Delete(ctx context.Context, id primitive.ObjectID) (deleted int64, err error)

	// ListView returns favorites joined to the referenced biodata.
	ListView(ctx context.Context, email string) ([]models.FavoriteView, error)
}

type FavoriteRepositoryImpl struct {
	favorites *mongo.Collection
}

func NewFavoriteRepository(favorites *mongo.Collection) FavoriteRepository {
	return &FavoriteRepositoryImpl{favorites: favorites}
}

func (r *FavoriteRepositoryImpl) FindPair(ctx context.Context, email, serverID string) (*models.Favorite, error) {
	var fav models.Favorite
	err := r.favorites.FindOne(ctx, bson.D{
		{Key: "serverId", Value: serverID},
		{Key: "email", Value: email},
	}).Decode(&fav)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepositoryImpl) Insert(ctx context.Context, fav *models.Favorite) (primitive.ObjectID, error) {
	res, err := r.favorites.InsertOne(ctx, fav)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *FavoriteRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Favorite, error) {
	var fav models.Favorite
	err := r.favorites.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&fav)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.favorites.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *FavoriteRepositoryImpl) ListView(ctx context.Context, email string) ([]models.FavoriteView, error) {
	cursor, err := r.favorites.Aggregate(ctx, FavoritesViewPipeline(email))
	if err != nil {
		return nil, err
	}
	views := []models.FavoriteView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}
