// Package mocks provides mock implementations of the voice use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenUseCase.
func (m *MockTokenUseCase) Issue(
	ctx context.Context,
	input *voiceDomain.IssueTokenInput,
) (*voiceDomain.AccessToken, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voiceDomain.AccessToken), args.Error(1)
}

// MockRoutingUseCase is a mock implementation of RoutingUseCase for testing.
type MockRoutingUseCase struct {
	mock.Mock
}

// Route mocks the Route method of RoutingUseCase.
func (m *MockRoutingUseCase) Route(
	ctx context.Context,
	input *voiceDomain.RouteCallInput,
) (*voiceDomain.RouteCallOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voiceDomain.RouteCallOutput), args.Error(1)
}
