package services

import (
	"context"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type UserService interface {
	// Login is the idempotent get-or-create by email: an existing account is
	// returned untouched, otherwise one is created with the regular role.
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// RequestPremium transitions the caller's membership to pending.
	RequestPremium(ctx context.Context, email string, req *dto.PendingRequest) (*dto.UpdateAck, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return existing, nil
	}
	if err != repositories.ErrUserNotFound {
		return nil, apperrors.DatabaseError(err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
		Role:  models.UserRoleRegular,
		Type:  models.MembershipNone,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	user.ID = id

	logger.CtxInfo(ctx, "user account created", "email", user.Email)
	return user, nil
}

func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) RequestPremium(ctx context.Context, email string, req *dto.PendingRequest) (*dto.UpdateAck, error) {
	matched, modified, err := s.userRepo.SetMembershipPending(ctx, email, req.BioID, req.ReqName)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &dto.UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}
