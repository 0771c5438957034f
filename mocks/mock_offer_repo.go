package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finodex/internal/domain"
)

// MockOfferRepo is a mock implementation of port.OfferRepository.
type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) Save(ctx context.Context, record *domain.OfferRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOfferRepo) List(ctx context.Context, documentType string, offset, limit int) ([]domain.OfferRecord, int, error) {
	args := m.Called(ctx, documentType, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.OfferRecord), args.Int(1), args.Error(2)
}
