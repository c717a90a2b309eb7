package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/api/v1/handlers"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/service/mocks"
	"github.com/carlostoek/diana-gamification-be/internal/utils/test_utils"
)

type adminMocks struct {
	players      *mocks.MockPlayerService
	points       *mocks.MockPointsService
	missions     *mocks.MockMissionService
	achievements *mocks.MockAchievementService
	daily        *mocks.MockDailyRewardService
}

// newAdminTestApp wires an AdminHandler with fresh mocks behind the mock JWT
// middleware, mirroring the /admin route group.
func newAdminTestApp(t *testing.T) (*fiber.App, *adminMocks) {
	app := fiber.New()
	m := &adminMocks{
		players:      mocks.NewMockPlayerService(t),
		points:       mocks.NewMockPointsService(t),
		missions:     mocks.NewMockMissionService(t),
		achievements: mocks.NewMockAchievementService(t),
		daily:        mocks.NewMockDailyRewardService(t),
	}
	adminHandler := handlers.NewAdminHandler(m.players, m.points, m.missions, m.achievements, m.daily)

	admin := app.Group("/api/v1/admin", test_utils.MockJWTMiddleware(3, "backoffice", "Admin"))
	admin.Post("/missions/refresh", adminHandler.RefreshDailyMissions)
	admin.Post("/missions", adminHandler.CreateMission)
	admin.Get("/missions", adminHandler.ListMissions)
	admin.Get("/missions/:id", adminHandler.GetMission)
	admin.Put("/missions/:id", adminHandler.UpdateMission)
	admin.Delete("/missions/:id", adminHandler.DeleteMission)
	admin.Post("/achievements", adminHandler.CreateAchievement)
	admin.Get("/achievements/:id", adminHandler.GetAchievement)
	admin.Post("/reward-tiers", adminHandler.CreateRewardTier)
	admin.Get("/reward-tiers", adminHandler.ListRewardTiers)
	admin.Put("/players/:userId/vip", adminHandler.SetVIP)
	admin.Post("/players/:userId/points/adjust", adminHandler.AdjustPoints)

	return app, m
}

func doAdminRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		reader = bytes.NewReader(bodyBytes)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var responseBody map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&responseBody)
	assert.NoError(t, err, "Failed to decode response body")
	resp.Body.Close()
	return resp, responseBody
}

func TestAdminHandler_CreateMission(t *testing.T) {
	validInput := models.CreateMissionInput{
		MissionKey:    "daily_react_5",
		Title:         "Reacciona 5 veces",
		MissionType:   "daily",
		PointsReward:  50,
		DurationHours: 24,
		Objectives: []models.ObjectiveInput{
			{ObjectiveKey: "react", ActionType: "reactions", Required: 5},
		},
	}

	t.Run("Success", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		m.missions.On("CreateMission", mock.Anything, &validInput).Return(12, nil).Once()

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/missions", validInput)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, map[string]interface{}{"mission_id": float64(12)}, body["data"])
	})

	t.Run("Validation Error - No Objectives", func(t *testing.T) {
		app, _ := newAdminTestApp(t)
		input := validInput
		input.Objectives = nil

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/missions", input)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["message"])
	})

	t.Run("Validation Error - Bad Mission Type", func(t *testing.T) {
		app, _ := newAdminTestApp(t)
		input := validInput
		input.MissionType = "weekly"

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/missions", input)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["message"])
	})
}

func TestAdminHandler_GetMission(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		mission := &models.Mission{ID: 12, MissionKey: "daily_react_5", Title: "Reacciona 5 veces"}
		m.missions.On("GetMission", mock.Anything, 12).Return(mission, nil).Once()

		resp, body := doAdminRequest(t, app, http.MethodGet, "/api/v1/admin/missions/12", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "daily_react_5", data["mission_key"])
	})

	t.Run("Not Found", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		m.missions.On("GetMission", mock.Anything, 99).Return(nil, service.ErrMissionNotFound).Once()

		resp, body := doAdminRequest(t, app, http.MethodGet, "/api/v1/admin/missions/99", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, service.ErrMissionNotFound.Error(), body["message"])
	})
}

func TestAdminHandler_RefreshDailyMissions(t *testing.T) {
	app, m := newAdminTestApp(t)
	m.missions.On("RefreshDaily", mock.Anything).Return(int64(8), 21, nil).Once()

	resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/missions/refresh", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(8), data["expired"])
	assert.Equal(t, float64(21), data["assigned"])
}

func TestAdminHandler_CreateRewardTier(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		input := models.CreateRewardTierInput{
			Rarity: "rare",
			Kind:   "multiplier",
			Multiplier: 2, MultiplierHours: 24,
			Weight: 15, StreakBonusWeight: 2,
		}
		m.daily.On("CreateTier", mock.Anything, &input).Return(4, nil).Once()

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/reward-tiers", input)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, map[string]interface{}{"tier_id": float64(4)}, body["data"])
	})

	t.Run("Validation Error - Bad Rarity", func(t *testing.T) {
		app, _ := newAdminTestApp(t)
		input := models.CreateRewardTierInput{Rarity: "mythic", Kind: "points", Points: 10, Weight: 5}

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/reward-tiers", input)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["message"])
	})
}

func TestAdminHandler_SetVIP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		input := models.SetVIPInput{IsVIP: true}
		m.players.On("SetVIP", mock.Anything, int64(42), &input).Return(nil).Once()

		resp, body := doAdminRequest(t, app, http.MethodPut, "/api/v1/admin/players/42/vip", input)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Player VIP flag updated successfully", body["message"])
	})

	t.Run("Player Not Found", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		input := models.SetVIPInput{IsVIP: true}
		m.players.On("SetVIP", mock.Anything, int64(99), &input).Return(service.ErrPlayerNotFound).Once()

		resp, body := doAdminRequest(t, app, http.MethodPut, "/api/v1/admin/players/99/vip", input)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, service.ErrPlayerNotFound.Error(), body["message"])
	})
}

func TestAdminHandler_AdjustPoints(t *testing.T) {
	input := models.AdjustPointsInput{ChangeAmount: -50, Notes: "fraud correction"}

	t.Run("Success - Account ID From Token", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		up := &models.UserPoints{UserID: 42, CurrentPoints: 50, TotalSpent: 50}
		// The mock JWT middleware injects account ID 3.
		m.points.On("AdjustPoints", mock.Anything, int64(42), &input, 3).Return(up, nil).Once()

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/players/42/points/adjust", input)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(50), data["current_points"])
	})

	t.Run("Balance Would Go Negative", func(t *testing.T) {
		app, m := newAdminTestApp(t)
		m.points.On("AdjustPoints", mock.Anything, int64(42), &input, 3).Return(nil, service.ErrInsufficientPoints).Once()

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/players/42/points/adjust", input)

		assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
		assert.Equal(t, service.ErrInsufficientPoints.Error(), body["message"])
	})

	t.Run("Validation Error - Missing Notes", func(t *testing.T) {
		app, _ := newAdminTestApp(t)

		resp, body := doAdminRequest(t, app, http.MethodPost, "/api/v1/admin/players/42/points/adjust", models.AdjustPointsInput{ChangeAmount: 10})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", body["message"])
	})
}
