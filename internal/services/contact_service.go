package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/services/dto"
)

type ContactService interface {
	// Submit records a contact request at pending status. No duplicate check:
	// a user may pay for the same biodata twice.
	Submit(ctx context.Context, req *models.ContactRequest) (*dto.InsertAck, error)

	MyRequests(ctx context.Context, email string) ([]models.ContactRequest, error)

	// Withdraw deletes the requester's own request at any status, approved
	// included.
	Withdraw(ctx context.Context, idHex, requesterEmail string) (*dto.DeleteAck, error)

	// Admin side
	All(ctx context.Context) ([]models.ContactRequest, error)
	Approve(ctx context.Context, idHex string) (*dto.UpdateAck, error)
	CountPending(ctx context.Context) (*dto.CountResponse, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRequestRepository
}

func NewContactService(contactRepo repositories.ContactRequestRepository) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, req *models.ContactRequest) (*dto.InsertAck, error) {
	id, err := s.contactRepo.Insert(ctx, req)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.InsertAck{InsertedID: id}, nil
}

func (s *ContactServiceImpl) MyRequests(ctx context.Context, email string) ([]models.ContactRequest, error) {
	requests, err := s.contactRepo.FindByApplicant(ctx, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return requests, nil
}

func (s *ContactServiceImpl) Withdraw(ctx context.Context, idHex, requesterEmail string) (*dto.DeleteAck, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid contact request id")
	}

	req, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrRequestNotFound {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if req.ApplicantEmail != requesterEmail {
		return nil, apperrors.ErrForbidden
	}

	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.DeleteAck{DeletedCount: deleted}, nil
}

func (s *ContactServiceImpl) All(ctx context.Context) ([]models.ContactRequest, error) {
	requests, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return requests, nil
}

func (s *ContactServiceImpl) Approve(ctx context.Context, idHex string) (*dto.UpdateAck, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid contact request id")
	}

	matched, modified, err := s.contactRepo.Approve(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrRequestNotFound
	}
	return &dto.UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *ContactServiceImpl) CountPending(ctx context.Context) (*dto.CountResponse, error) {
	count, err := s.contactRepo.CountPending(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.CountResponse{Count: count}, nil
}
