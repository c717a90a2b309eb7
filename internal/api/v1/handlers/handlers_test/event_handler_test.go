package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/api/v1/handlers"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/service/mocks"
)

func TestEventHandler_ProcessEvent(t *testing.T) {
	eventID := uuid.New()

	// --- Test Cases ---
	tests := []struct {
		name           string
		input          models.DomainEvent
		setupMock      func(mockService *mocks.MockEngineService, input models.DomainEvent)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Success - Reaction Event",
			input: models.DomainEvent{
				EventID:  eventID,
				UserID:   42,
				Type:     models.EventReactionAdded,
				Value:    1,
				Username: "lucia",
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				outcome := &models.EventOutcome{
					EventID:       input.EventID,
					UserID:        input.UserID,
					PointsAwarded: 10,
					NewBalance:    110,
					Level:         2,
					PreviousLevel: 2,
				}
				mockService.On("ProcessEvent", mock.Anything, &input).Return(outcome, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Event processed successfully",
		},
		{
			name: "Validation Error - Missing User ID",
			input: models.DomainEvent{
				EventID: eventID,
				Type:    models.EventReactionAdded,
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				// No service call expected
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name: "Validation Error - Unknown Event Type",
			input: models.DomainEvent{
				EventID: eventID,
				UserID:  42,
				Type:    "poll_answered",
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				// No service call expected
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name: "Validation Error - Mission Action Without Action Type",
			input: models.DomainEvent{
				EventID: eventID,
				UserID:  42,
				Type:    models.EventMissionAction,
				Value:   1,
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				// No service call expected
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "action_type is required for mission_action events",
		},
		{
			name: "Service Error - Duplicate Event",
			input: models.DomainEvent{
				EventID: eventID,
				UserID:  42,
				Type:    models.EventCheckin,
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				mockService.On("ProcessEvent", mock.Anything, &input).Return(nil, service.ErrDuplicateEvent).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    service.ErrDuplicateEvent.Error(),
		},
		{
			name: "Service Error - Generic Internal Error",
			input: models.DomainEvent{
				EventID: eventID,
				UserID:  42,
				Type:    models.EventTriviaAnswered,
				Value:   1,
			},
			setupMock: func(mockService *mocks.MockEngineService, input models.DomainEvent) {
				mockService.On("ProcessEvent", mock.Anything, &input).Return(nil, errors.New("some internal error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "An internal error occurred",
		},
	}

	// --- Run Tests ---
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Setup
			app := fiber.New()
			mockEngineService := mocks.NewMockEngineService(t)
			eventHandler := handlers.NewEventHandler(mockEngineService)
			app.Post("/api/v1/engine/events", eventHandler.ProcessEvent)

			tc.setupMock(mockEngineService, tc.input)

			bodyBytes, _ := json.Marshal(tc.input)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/engine/events", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			var responseBody map[string]interface{}
			err = json.NewDecoder(resp.Body).Decode(&responseBody)
			assert.NoError(t, err, "Failed to decode response body")
			assert.Equal(t, tc.expectedStatus == http.StatusOK, responseBody["success"])
			assert.Equal(t, tc.expectedMsg, responseBody["message"])

			mockEngineService.AssertExpectations(t)
		})
	}
}

func TestEventHandler_ProcessEvent_OutcomePayload(t *testing.T) {
	app := fiber.New()
	mockEngineService := mocks.NewMockEngineService(t)
	eventHandler := handlers.NewEventHandler(mockEngineService)
	app.Post("/api/v1/engine/events", eventHandler.ProcessEvent)

	event := models.DomainEvent{
		EventID: uuid.New(),
		UserID:  42,
		Type:    models.EventTriviaAnswered,
		Value:   1,
	}
	outcome := &models.EventOutcome{
		EventID:       event.EventID,
		UserID:        42,
		PointsAwarded: 70,
		NewBalance:    170,
		TotalEarned:   170,
		PreviousLevel: 1,
		Level:         2,
		LevelUp:       true,
		CompletedMissions: []models.MissionCompletion{
			{UserMissionID: 7, MissionKey: "trivia_5", Title: "Responde 5 trivias", PointsReward: 50},
		},
		UnlockedAchievements: []models.AchievementUnlock{},
	}
	mockEngineService.On("ProcessEvent", mock.Anything, &event).Return(outcome, nil).Once()

	bodyBytes, _ := json.Marshal(event)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/engine/events", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var responseBody map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&responseBody)
	assert.NoError(t, err)

	data, ok := responseBody["data"].(map[string]interface{})
	assert.True(t, ok, "data should be an object")
	assert.Equal(t, float64(70), data["points_awarded"])
	assert.Equal(t, true, data["level_up"])
	completions, ok := data["completed_missions"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, completions, 1)
}
