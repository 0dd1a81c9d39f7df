package waitlist

import (
	"context"
	"testing"

	"github.com/sarthi-app/sarthi-api/internal/log"
	"github.com/sarthi-app/sarthi-api/internal/models"
	apperrors "github.com/sarthi-app/sarthi-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWaitlistService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("successful creation normalizes the email", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			Email:     "  Foo@Bar.com  ",
			FirstName: "Ann",
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				assert.Equal(t, "foo@bar.com", entry.Email)
				return entry, nil
			})

		result, err := service.CreateEntry(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "foo@bar.com", result.Email)
		if assert.NotNil(t, result.FirstName) {
			assert.Equal(t, "Ann", *result.FirstName)
		}
	})

	t.Run("missing email is a validation failure and nothing is inserted", func(t *testing.T) {
		for _, email := range []string{"", "   ", "\t\n"} {
			req := &CreateWaitlistEntryRequest{Email: email}

			result, err := service.CreateEntry(context.Background(), req)

			assert.Nil(t, result)
			assert.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		}
	})

	t.Run("nil request is a validation failure", func(t *testing.T) {
		result, err := service.CreateEntry(context.Background(), nil)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("duplicate email surfaces the business message", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{Email: "a@b.com"}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError(DuplicateEmailMessage, nil))

		result, err := service.CreateEntry(context.Background(), req)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
		assert.Equal(t, DuplicateEmailMessage, apperrors.GetHumanReadableMessage(err))
	})

	t.Run("repository error propagates without leaking detail", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{Email: "x@y.com"}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("unable to create waitlist entry", assert.AnError))

		result, err := service.CreateEntry(context.Background(), req)

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	})
}

func TestWaitlistService_CountEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("returns the repository count", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

		result, err := service.CountEntries(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), result.Count)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), apperrors.NewDatabaseError("unable to count waitlist entries", nil))

		result, err := service.CountEntries(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
