package waitlist

import (
	"strings"

	"github.com/sarthi-app/sarthi-api/internal/models"
	"github.com/sarthi-app/sarthi-api/pkg/constants"
)

type SelectedCountry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateWaitlistEntryRequest struct {
	Email           string           `json:"email" binding:"required"`
	FirstName       string           `json:"firstName"`
	PhoneNumber     string           `json:"phoneNumber"`
	SelectedCountry *SelectedCountry `json:"selectedCountry"`
	Interest        string           `json:"interest"`
}

type WaitlistEntryResponse struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	FirstName   *string `json:"first_name"`
	PhoneNumber *string `json:"phone_number"`
	CountryCode *string `json:"country_code"`
	CountryName *string `json:"country_name"`
	Interest    *string `json:"interest"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type WaitlistCountResponse struct {
	Count int64 `json:"count"`
}

// ========================================
// Normalization
// ========================================

// Normalize applies the canonical field-by-field rules and produces the model
// to persist:
//   - email: trimmed and lowercased
//   - firstName, phoneNumber: trimmed; empty results become NULL
//   - selectedCountry: code/name lifted out of the nested object when present
//   - interest: kept only when it is one of the recognized choices
func (req *CreateWaitlistEntryRequest) Normalize() *models.WaitlistEntry {
	if req == nil {
		return nil
	}

	entry := &models.WaitlistEntry{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:   optionalString(strings.TrimSpace(req.FirstName)),
		PhoneNumber: optionalString(strings.TrimSpace(req.PhoneNumber)),
	}

	if req.SelectedCountry != nil {
		entry.CountryCode = optionalString(req.SelectedCountry.Code)
		entry.CountryName = optionalString(req.SelectedCountry.Name)
	}

	if models.IsRecognizedInterest(req.Interest) {
		entry.Interest = optionalString(req.Interest)
	}

	return entry
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:          entry.ID,
		Email:       entry.Email,
		FirstName:   entry.FirstName,
		PhoneNumber: entry.PhoneNumber,
		CountryCode: entry.CountryCode,
		CountryName: entry.CountryName,
		Interest:    entry.Interest,
		CreatedAt:   entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:   entry.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
