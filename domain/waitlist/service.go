package waitlist

import (
	"context"

	"github.com/sarthi-app/sarthi-api/internal/log"
	apperrors "github.com/sarthi-app/sarthi-api/pkg/errors"
)

type WaitlistService interface {
	// CreateEntry validates and normalizes one submission, then persists it.
	CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*WaitlistEntryResponse, error)

	// CountEntries returns the total number of registrations, for display only.
	CountEntries(ctx context.Context) (*WaitlistCountResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (s *waitlistService) CreateEntry(ctx context.Context, req *CreateWaitlistEntryRequest) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateEntry received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	entryModel := req.Normalize()

	// Presence is re-checked after trimming: a whitespace-only email passes
	// binding but must still be rejected as a validation failure.
	if entryModel.Email == "" {
		logger.Error("CreateEntry received request without email")
		return nil, apperrors.NewInvalidRequestError("Email is required", nil)
	}

	entry, err := s.repository.Insert(ctx, entryModel)
	if err != nil {
		logger.Error("Failed to create waitlist entry", "error", err)
		return nil, err
	}

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func (s *waitlistService) CountEntries(ctx context.Context) (*WaitlistCountResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	count, err := s.repository.Count(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist entries", "error", err)
		return nil, err
	}

	return &WaitlistCountResponse{Count: count}, nil
}
