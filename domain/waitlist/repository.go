package waitlist

import (
	"context"
	"errors"

	"github.com/sarthi-app/sarthi-api/internal/models"
	apperrors "github.com/sarthi-app/sarthi-api/pkg/errors"
	"gorm.io/gorm"
)

// DuplicateEmailMessage is the user-facing business outcome for an email that
// is already registered.
const DuplicateEmailMessage = "This email is already on our waitlist!"

type WaitlistRepository interface {
	// Insert persists a new waitlist entry. A uniqueness violation on email is
	// returned as a conflict, not propagated as a raw database error.
	Insert(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// Count returns the total number of waitlist entries.
	Count(ctx context.Context) (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) Insert(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError(DuplicateEmailMessage, err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return entry, nil
}

func (wr *waitlistRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := wr.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return count, nil
}

// isDuplicateKey keeps the backend-specific duplicate discrimination in one
// place so the rest of the domain only sees the conflict classification.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
