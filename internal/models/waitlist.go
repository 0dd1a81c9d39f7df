package models

import "gorm.io/gorm"

// Recognized interest choices. Anything else is stored as NULL.
const (
	InterestPersonal     = "personal"
	InterestProfessional = "professional"
	InterestBoth         = "both"
)

type WaitlistEntry struct {
	gorm.Model
	Email       string  `gorm:"not null;unique;index"`
	FirstName   *string `gorm:"type:text"`
	PhoneNumber *string `gorm:"type:text"`
	CountryCode *string `gorm:"type:text"`
	CountryName *string `gorm:"type:text"`
	Interest    *string `gorm:"type:text"`
}

// TableName keeps the table name aligned with the hosted schema.
func (WaitlistEntry) TableName() string {
	return "waitlist"
}

func IsRecognizedInterest(interest string) bool {
	switch interest {
	case InterestPersonal, InterestProfessional, InterestBoth:
		return true
	default:
		return false
	}
}
