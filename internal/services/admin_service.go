package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type AdminService interface {
	PendingMemberships(ctx context.Context) ([]models.User, error)
	ApprovePremium(ctx context.Context, idHex string) (*dto.UpdateAck, error)
	MakeAdmin(ctx context.Context, idHex string) (*dto.UpdateAck, error)
	AllUsers(ctx context.Context) ([]models.User, error)

	// Dashboard collects the /allInformation aggregates.
	Dashboard(ctx context.Context) (*dto.DashboardInfo, error)
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	biodataRepo repositories.BiodataRepository
	contactRepo repositories.ContactRequestRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	biodataRepo repositories.BiodataRepository,
	contactRepo repositories.ContactRequestRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		biodataRepo: biodataRepo,
		contactRepo: contactRepo,
	}
}

func (s *AdminServiceImpl) PendingMemberships(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindPendingRequests(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return users, nil
}

func (s *AdminServiceImpl) ApprovePremium(ctx context.Context, idHex string) (*dto.UpdateAck, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid user id")
	}

	matched, modified, err := s.userRepo.ApprovePremium(ctx, id, time.Now())
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &dto.UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *AdminServiceImpl) MakeAdmin(ctx context.Context, idHex string) (*dto.UpdateAck, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid user id")
	}

	matched, modified, err := s.userRepo.MakeAdmin(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &dto.UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *AdminServiceImpl) AllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return users, nil
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardInfo, error) {
	totalBio, err := s.biodataRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	female, err := s.biodataRepo.CountByType(ctx, models.BiodataTypeFemale)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	male, err := s.biodataRepo.CountByType(ctx, models.BiodataTypeMale)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	premium, err := s.userRepo.CountPremium(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	revenue, err := s.contactRepo.SumAmount(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.DashboardInfo{
		TotalBio:     totalBio,
		Female:       female,
		Male:         male,
		Premium:      premium,
		TotalRevenue: revenue,
	}, nil
}
