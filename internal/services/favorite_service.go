package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type FavoriteService interface {
	// Add stores the favorite once per (email, serverId) pair. A repeated
	// submission answers {status: true} without inserting.
	Add(ctx context.Context, fav *models.Favorite) (created bool, ack *dto.InsertAck, err error)

	List(ctx context.Context, email string) ([]models.FavoriteView, error)

	// Remove deletes the favorite after verifying the requester owns it.
	Remove(ctx context.Context, idHex, requesterEmail string) (*dto.DeleteAck, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) FavoriteService {
	return &FavoriteServiceImpl{favoriteRepo: favoriteRepo}
}

func (s *FavoriteServiceImpl) Add(ctx context.Context, fav *models.Favorite) (bool, *dto.InsertAck, error) {
	_, err := s.favoriteRepo.FindPair(ctx, fav.Email, fav.ServerID)
	if err == nil {
		return false, nil, nil
	}
	if err != repositories.ErrFavoriteNotFound {
		return false, nil, apperrors.DatabaseError(err)
	}

	id, err := s.favoriteRepo.Insert(ctx, fav)
	if err != nil {
		// A concurrent insert of the same pair trips the unique index; that
		// still counts as "already present".
		if mongo.IsDuplicateKeyError(err) {
			return false, nil, nil
		}
		return false, nil, apperrors.DatabaseError(err)
	}
	return true, &dto.InsertAck{InsertedID: id}, nil
}

func (s *FavoriteServiceImpl) List(ctx context.Context, email string) ([]models.FavoriteView, error) {
	views, err := s.favoriteRepo.ListView(ctx, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return views, nil
}

func (s *FavoriteServiceImpl) Remove(ctx context.Context, idHex, requesterEmail string) (*dto.DeleteAck, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid favorite id")
	}

	fav, err := s.favoriteRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrFavoriteNotFound {
			return nil, apperrors.ErrFavoriteNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if fav.Email != requesterEmail {
		return nil, apperrors.ErrForbidden
	}

	deleted, err := s.favoriteRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.DeleteAck{DeletedCount: deleted}, nil
}
