package waitlist

import (
	"testing"

	"github.com/sarthi-app/sarthi-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("email is trimmed and lowercased", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{Email: "  Foo@Bar.com  "}

		entry := req.Normalize()

		assert.Equal(t, "foo@bar.com", entry.Email)
	})

	t.Run("optional fields trim to absent", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			Email:       "x@y.com",
			FirstName:   "   ",
			PhoneNumber: "",
		}

		entry := req.Normalize()

		assert.Nil(t, entry.FirstName)
		assert.Nil(t, entry.PhoneNumber)
		assert.Nil(t, entry.CountryCode)
		assert.Nil(t, entry.CountryName)
	})

	t.Run("optional fields keep trimmed values", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			Email:       "x@y.com",
			FirstName:   " Ann ",
			PhoneNumber: "555-1111",
		}

		entry := req.Normalize()

		if assert.NotNil(t, entry.FirstName) {
			assert.Equal(t, "Ann", *entry.FirstName)
		}
		if assert.NotNil(t, entry.PhoneNumber) {
			assert.Equal(t, "555-1111", *entry.PhoneNumber)
		}
	})

	t.Run("selected country is flattened", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{
			Email:           "x@y.com",
			SelectedCountry: &SelectedCountry{Code: "+1", Name: "United States"},
		}

		entry := req.Normalize()

		if assert.NotNil(t, entry.CountryCode) {
			assert.Equal(t, "+1", *entry.CountryCode)
		}
		if assert.NotNil(t, entry.CountryName) {
			assert.Equal(t, "United States", *entry.CountryName)
		}
	})

	t.Run("recognized interests are stored verbatim", func(t *testing.T) {
		for _, interest := range []string{models.InterestPersonal, models.InterestProfessional, models.InterestBoth} {
			req := &CreateWaitlistEntryRequest{Email: "x@y.com", Interest: interest}

			entry := req.Normalize()

			if assert.NotNil(t, entry.Interest) {
				assert.Equal(t, interest, *entry.Interest)
			}
		}
	})

	t.Run("unrecognized interest becomes absent", func(t *testing.T) {
		for _, interest := range []string{"", "business", "PERSONAL", "other"} {
			req := &CreateWaitlistEntryRequest{Email: "x@y.com", Interest: interest}

			entry := req.Normalize()

			assert.Nil(t, entry.Interest)
		}
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		req := &CreateWaitlistEntryRequest{Email: "  Foo@Bar.com  ", FirstName: " Ann "}

		first := req.Normalize()
		second := (&CreateWaitlistEntryRequest{Email: first.Email, FirstName: *first.FirstName}).Normalize()

		assert.Equal(t, first.Email, second.Email)
		assert.Equal(t, *first.FirstName, *second.FirstName)
	})

	t.Run("nil request yields nil entry", func(t *testing.T) {
		var req *CreateWaitlistEntryRequest

		assert.Nil(t, req.Normalize())
	})
}
