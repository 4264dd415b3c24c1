package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup/internal/common/logger"
	"activity-signup/internal/registry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Test Helper Functions
// ==========================

func createTestRouter(t *testing.T) (*gin.Engine, *registry.Registry) {
	t.Helper()
	reg, err := registry.New(logger.NewTestLogger(t), []registry.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis fundamentals and play friendly matches",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
	})
	require.NoError(t, err)
	return NewRouter(reg, logger.NewTestLogger(t)), reg
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ==========================
// GET /activities
// ==========================

func TestListActivities(t *testing.T) {
	router, _ := createTestRouter(t)

	w := doRequest(router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)

	chess := body["Chess Club"]
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	assert.NotNil(t, body["Tennis Club"].Participants, "empty participants serialize as [], not null")
}

// ==========================
// POST /activities/:name/signup
// ==========================

func TestSignupEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "successful signup",
			target:         "/activities/Chess%20Club/signup?email=new@example.com",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Signed up new@example.com for Chess Club",
		},
		{
			name:           "duplicate signup",
			target:         "/activities/Chess%20Club/signup?email=michael@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "michael@mergington.edu is already signed up",
		},
		{
			name:           "unknown activity",
			target:         "/activities/Nonexistent%20Activity/signup?email=x@example.com",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "missing email",
			target:         "/activities/Chess%20Club/signup",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "email query parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := createTestRouter(t)

			w := doRequest(router, http.MethodPost, tt.target)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedValue, decodeBody(t, w)[tt.expectedKey])
		})
	}
}

func TestSignupEndpoint_AddsParticipant(t *testing.T) {
	router, reg := createTestRouter(t)

	w := doRequest(router, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	participants := reg.List()["Chess Club"].Participants
	assert.Len(t, participants, 3)
	assert.Equal(t, "newstudent@example.com", participants[2])
}

// ==========================
// DELETE /activities/:name/unregister
// ==========================

func TestUnregisterEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "successful unregister",
			target:         "/activities/Chess%20Club/unregister?email=daniel@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Unregistered daniel@mergington.edu from Chess Club",
		},
		{
			name:           "email not signed up",
			target:         "/activities/Chess%20Club/unregister?email=notregistered@example.com",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "notregistered@example.com is not signed up for this activity",
		},
		{
			name:           "unknown activity",
			target:         "/activities/Nonexistent%20Activity/unregister?email=x@example.com",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "missing email",
			target:         "/activities/Chess%20Club/unregister",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "email query parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := createTestRouter(t)

			w := doRequest(router, http.MethodDelete, tt.target)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedValue, decodeBody(t, w)[tt.expectedKey])
		})
	}
}

// ==========================
// Flow & Plumbing
// ==========================

func TestSignupThenUnregisterFlow(t *testing.T) {
	router, reg := createTestRouter(t)

	w := doRequest(router, http.MethodPost, "/activities/Tennis%20Club/signup?email=integration@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, reg.List()["Tennis Club"].Participants, "integration@example.com")

	w = doRequest(router, http.MethodDelete, "/activities/Tennis%20Club/unregister?email=integration@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, reg.List()["Tennis Club"].Participants)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := createTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := createTestRouter(t)

	w := doRequest(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "activity_participants")
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := createTestRouter(t)

	t.Run("generated when absent", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/health")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-42")
		router.ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}
