package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finodex/internal/port"
)

// MockModelGateway is a mock implementation of port.ModelGateway.
type MockModelGateway struct {
	mock.Mock
}

func (m *MockModelGateway) Process(ctx context.Context, req port.GatewayRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
