package waitlistclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestFormController_SubmitSuccessClearsFieldsAndReverts(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/waitlist", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "x@y.com", payload["email"])

		country := payload["selectedCountry"].(map[string]any)
		require.Equal(t, "+1", country["code"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Successfully added to waitlist!",
			"data":    map[string]any{"id": 1, "email": "x@y.com"},
		})
	})

	fc := NewFormController(server.URL)
	fc.resetDelay = 50 * time.Millisecond
	fc.SetFields(Fields{Email: "x@y.com", FirstName: "Ann"})

	entry, err := fc.Submit(context.Background())

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "x@y.com", entry.Email)
	assert.Equal(t, StateSucceeded, fc.State())
	assert.Equal(t, defaultFields(), fc.Fields())
	assert.Empty(t, fc.ErrorMessage())

	assert.Eventually(t, func() bool {
		return fc.State() == StateEditing
	}, time.Second, 5*time.Millisecond, "confirmation state should revert to editing")
}

func TestFormController_SubmitFailureKeepsFieldsAndMessage(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "This email is already on our waitlist!",
		})
	})

	fc := NewFormController(server.URL)
	fields := Fields{Email: "dup@y.com", FirstName: "Ann", Country: DefaultCountry}
	fc.SetFields(fields)

	entry, err := fc.Submit(context.Background())

	assert.Nil(t, entry)
	assert.Error(t, err)
	assert.Equal(t, "This email is already on our waitlist!", fc.ErrorMessage())
	assert.Equal(t, fields, fc.Fields(), "entered values are kept for retry")
	assert.Equal(t, StateEditing, fc.State())
}

func TestFormController_NetworkFailureUsesGenericMessage(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	baseURL := server.URL
	server.Close()

	fc := NewFormController(baseURL)
	fc.SetFields(Fields{Email: "x@y.com"})

	_, err := fc.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, NetworkErrorMessage, fc.ErrorMessage())
	assert.Equal(t, StateEditing, fc.State())
}

func TestFormController_RejectsOverlappingSubmissions(t *testing.T) {
	release := make(chan struct{})
	var requests atomic.Int32

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok", "data": map[string]any{}})
	})

	fc := NewFormController(server.URL)
	fc.SetFields(Fields{Email: "x@y.com"})

	firstDone := make(chan error, 1)
	go func() {
		_, err := fc.Submit(context.Background())
		firstDone <- err
	}()

	require.Eventually(t, func() bool {
		return requests.Load() == 1
	}, time.Second, 5*time.Millisecond)

	_, err := fc.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestFormController_Count(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/waitlist/count", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Waitlist count retrieved successfully",
			"data":    map[string]any{"count": 7},
		})
	})

	fc := NewFormController(server.URL)

	count, err := fc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
