// Package waitlistclient drives the waitlist signup form against the API:
// it owns the editable field state, submits it as one request, and tracks the
// submission lifecycle (editing, submitting, succeeded) the same way the
// signup page does.
package waitlistclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not settled yet.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// NetworkErrorMessage is shown when the request itself fails and the server
// provided no message.
const NetworkErrorMessage = "Something went wrong. Please try again."

// SuccessResetDelay is how long the confirmation state is shown before the
// form reverts to editing.
const SuccessResetDelay = 5 * time.Second

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
)

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultCountry is the pre-selected country for a fresh form.
var DefaultCountry = Country{Code: "+1", Name: "United States"}

type Fields struct {
	Email       string
	FirstName   string
	PhoneNumber string
	Country     Country
	Interest    string
}

func defaultFields() Fields {
	return Fields{Country: DefaultCountry}
}

type submitPayload struct {
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName,omitempty"`
	PhoneNumber     string  `json:"phoneNumber,omitempty"`
	SelectedCountry Country `json:"selectedCountry"`
	Interest        string  `json:"interest,omitempty"`
}

// Entry mirrors the persisted record returned on success.
type Entry struct {
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

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    *Entry `json:"data"`
}

type countEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Count int64 `json:"count"`
	} `json:"data"`
}

// FormController holds one form's transient state and submits it. Submissions
// never overlap: the controller is "disabled" while one request is pending,
// and a failed submission keeps the entered values so the user can retry.
type FormController struct {
	httpClient *resty.Client
	resetDelay time.Duration

	mu         sync.Mutex
	fields     Fields
	state      State
	errMessage string
	inFlight   bool
	resetTimer *time.Timer
}

func NewFormController(baseURL string) *FormController {
	// Deliberately no resty retry policy: retrying is a manual user action.
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &FormController{
		httpClient: client,
		resetDelay: SuccessResetDelay,
		fields:     defaultFields(),
	}
}

// SetFields replaces the editable field values. Ignored while a submission is
// in flight.
func (fc *FormController) SetFields(fields Fields) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.inFlight {
		return
	}
	if fields.Country == (Country{}) {
		fields.Country = DefaultCountry
	}
	fc.fields = fields
}

func (fc *FormController) Fields() Fields {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.fields
}

func (fc *FormController) State() State {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.state
}

// ErrorMessage returns the message from the last failed submission, or "".
func (fc *FormController) ErrorMessage() string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.errMessage
}

// Submit sends the current fields to the waitlist endpoint and settles the
// form state. On success the fields are reset to defaults and the confirmation
// state reverts to editing after the reset delay. On failure the entered
// values are kept and the server's message (or a generic network-error
// message) is surfaced.
func (fc *FormController) Submit(ctx context.Context) (*Entry, error) {
	fc.mu.Lock()
	if fc.inFlight {
		fc.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	fc.inFlight = true
	fc.errMessage = ""
	fc.state = StateSubmitting
	payload := submitPayload{
		Email:           fc.fields.Email,
		FirstName:       fc.fields.FirstName,
		PhoneNumber:     fc.fields.PhoneNumber,
		SelectedCountry: fc.fields.Country,
		Interest:        fc.fields.Interest,
	}
	fc.mu.Unlock()

	var result envelope
	resp, err := fc.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(&result).
		Post("/api/waitlist")

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.inFlight = false

	if err != nil {
		fc.state = StateEditing
		fc.errMessage = NetworkErrorMessage
		return nil, err
	}

	if !result.Success || resp.IsError() {
		fc.state = StateEditing
		fc.errMessage = result.Error
		if fc.errMessage == "" {
			fc.errMessage = NetworkErrorMessage
		}
		return nil, errors.New(fc.errMessage)
	}

	fc.fields = defaultFields()
	fc.state = StateSucceeded
	if fc.resetTimer != nil {
		fc.resetTimer.Stop()
	}
	fc.resetTimer = time.AfterFunc(fc.resetDelay, func() {
		fc.mu.Lock()
		defer fc.mu.Unlock()
		if fc.state == StateSucceeded {
			fc.state = StateEditing
		}
	})

	return result.Data, nil
}

// Count fetches the current number of registrations, for display only.
func (fc *FormController) Count(ctx context.Context) (int64, error) {
	var result countEnvelope
	resp, err := fc.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/waitlist/count")
	if err != nil {
		return 0, err
	}
	if resp.IsError() || !result.Success {
		return 0, errors.New("unable to fetch waitlist count")
	}
	return result.Data.Count, nil
}
