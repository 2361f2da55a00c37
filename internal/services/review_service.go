package services

import (
	"context"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type ReviewService interface {
	Add(ctx context.Context, review *models.Review) (*dto.InsertAck, error)
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

func (s *ReviewServiceImpl) Add(ctx context.Context, review *models.Review) (*dto.InsertAck, error) {
	id, err := s.reviewRepo.Insert(ctx, review)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.InsertAck{InsertedID: id}, nil
}
