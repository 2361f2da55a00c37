package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type BiodataService interface {
	// Create assigns the next bioId from the atomic sequence, inserts the
	// profile and flips the owner's account to registered.
	Create(ctx context.Context, bio *models.Biodata) (*dto.InsertAck, error)

	Update(ctx context.Context, email string, bio *models.Biodata) (*dto.UpdateAck, error)
	GetByEmail(ctx context.Context, email string) (*models.Biodata, error)
	GetByID(ctx context.Context, idHex string) (*models.Biodata, error)
	GetByBioID(ctx context.Context, bioID int) (*models.Biodata, error)
	GetSimilar(ctx context.Context, biodataType string) ([]models.Biodata, error)

	// PremiumListing is the public joined view, capped at 6 records.
	PremiumListing(ctx context.Context, rawSortDir string) ([]bson.M, error)
}

type BiodataServiceImpl struct {
	biodataRepo repositories.BiodataRepository
	userRepo    repositories.UserRepository
}

func NewBiodataService(biodataRepo repositories.BiodataRepository, userRepo repositories.UserRepository) BiodataService {
	return &BiodataServiceImpl{
		biodataRepo: biodataRepo,
		userRepo:    userRepo,
	}
}

func (s *BiodataServiceImpl) Create(ctx context.Context, bio *models.Biodata) (*dto.InsertAck, error) {
	bioID, err := s.biodataRepo.NextBioID(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	bio.BioID = bioID

	if err := s.userRepo.MarkRegistered(ctx, bio.Email); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	id, err := s.biodataRepo.Create(ctx, bio)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "biodata created", "email", bio.Email, "bioId", bioID)
	return &dto.InsertAck{InsertedID: id}, nil
}

func (s *BiodataServiceImpl) Update(ctx context.Context, email string, bio *models.Biodata) (*dto.UpdateAck, error) {
	matched, modified, err := s.biodataRepo.UpdateByEmail(ctx, email, bio)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrBiodataNotFound
	}
	return &dto.UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *BiodataServiceImpl) GetByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	bio, err := s.biodataRepo.FindByEmail(ctx, email)
	return mapBiodataResult(bio, err)
}

func (s *BiodataServiceImpl) GetByID(ctx context.Context, idHex string) (*models.Biodata, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid biodata id")
	}
	bio, findErr := s.biodataRepo.FindByObjectID(ctx, id)
	return mapBiodataResult(bio, findErr)
}

func (s *BiodataServiceImpl) GetByBioID(ctx context.Context, bioID int) (*models.Biodata, error) {
	bio, err := s.biodataRepo.FindByBioID(ctx, bioID)
	return mapBiodataResult(bio, err)
}

func (s *BiodataServiceImpl) GetSimilar(ctx context.Context, biodataType string) ([]models.Biodata, error) {
	results, err := s.biodataRepo.FindByType(ctx, biodataType)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return results, nil
}

func (s *BiodataServiceImpl) PremiumListing(ctx context.Context, rawSortDir string) ([]bson.M, error) {
	dir := repositories.ParseSortDirection(rawSortDir)
	results, err := s.userRepo.PremiumListing(ctx, dir)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return results, nil
}

func mapBiodataResult(bio *models.Biodata, err error) (*models.Biodata, error) {
	if err != nil {
		if err == repositories.ErrBiodataNotFound {
			return nil, apperrors.ErrBiodataNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return bio, nil
}
