package services

import (
	"context"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/payments"
	"matchmate_backend/internal/services/dto"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type PaymentServiceImpl struct {
	intents payments.IntentClient
}

func NewPaymentService(intents payments.IntentClient) PaymentService {
	return &PaymentServiceImpl{intents: intents}
}

func (s *PaymentServiceImpl) CreateIntent(ctx context.Context, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	secret, err := s.intents.CreateIntent(ctx, req.Price)
	if err != nil {
		logger.CtxWithError(ctx, "payment intent creation failed", err, "price", req.Price)
		return nil, apperrors.PaymentProviderError(err)
	}
	return &dto.PaymentIntentResponse{ClientSecret: secret}, nil
}
