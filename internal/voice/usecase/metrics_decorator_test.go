package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	"github.com/allisson/voice-token-server/internal/voice/usecase"
	usecaseMocks "github.com/allisson/voice-token-server/internal/voice/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordDialTarget(ctx context.Context, kind string) {
	m.Called(ctx, kind)
}

func TestTokenUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockTokenUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Issue success", func(t *testing.T) {
		input := &voiceDomain.IssueTokenInput{Identity: "alice"}
		output := &voiceDomain.AccessToken{Token: "signed", Identity: "alice"}

		mockNext.On("Issue", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "voice", "token_issue", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "voice", "token_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Issue(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Issue error", func(t *testing.T) {
		input := &voiceDomain.IssueTokenInput{Identity: "alice"}
		expectedErr := errors.New("error")

		mockNext.On("Issue", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "voice", "token_issue", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "voice", "token_issue", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Issue(ctx, input)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestRoutingUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockRoutingUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewRoutingUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Route success", func(t *testing.T) {
		input := &voiceDomain.RouteCallInput{Destination: "alice"}
		output := &voiceDomain.RouteCallOutput{
			Target: voiceDomain.DialTarget{Kind: voiceDomain.TargetClient, Value: "alice"},
		}

		mockNext.On("Route", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordDialTarget", ctx, "client").Return().Once()
		mockMetrics.On("RecordOperation", ctx, "voice", "call_route", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "voice", "call_route", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Route(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Route error", func(t *testing.T) {
		input := &voiceDomain.RouteCallInput{Destination: "alice"}
		expectedErr := errors.New("error")

		mockNext.On("Route", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "voice", "call_route", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "voice", "call_route", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Route(ctx, input)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
