// internal/service/reward_draw_test.go
package service

import (
	"testing"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveWeight(t *testing.T) {
	tier := &models.DailyRewardTier{Weight: 10, StreakBonusWeight: 2}

	testCases := []struct {
		name   string
		streak int
		want   int
	}{
		{"zero streak clamps to base", 0, 10},
		{"day one has no bonus", 1, 10},
		{"day two adds one bonus step", 2, 12},
		{"day five adds four bonus steps", 5, 18},
		{"bonus caps at seven days", 8, 24},
		{"long streak stays capped", 100, 24},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, effectiveWeight(tier, tc.streak))
		})
	}
}

func TestDrawRewardTier(t *testing.T) {
	tiers := []models.DailyRewardTier{
		{ID: 1, Rarity: models.RarityCommon, Weight: 70},
		{ID: 2, Rarity: models.RarityRare, Weight: 20},
		{ID: 3, Rarity: models.RarityEpic, Weight: 10},
	}

	testCases := []struct {
		name   string
		roll   int
		wantID int
	}{
		{"roll zero hits first tier", 0, 1},
		{"last value inside first bucket", 69, 1},
		{"first value of second bucket", 70, 2},
		{"last value of second bucket", 89, 2},
		{"first value of third bucket", 90, 3},
		{"max roll hits last tier", 99, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := drawRewardTier(tiers, 1, func(n int) int {
				assert.Equal(t, 100, n)
				return tc.roll
			})
			assert.NotNil(t, got)
			assert.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestDrawRewardTierStreakShiftsBuckets(t *testing.T) {
	tiers := []models.DailyRewardTier{
		{ID: 1, Weight: 50},
		{ID: 2, Weight: 10, StreakBonusWeight: 5},
	}

	// On day four the second tier carries 10 + 5*3 = 25 weight, total 75.
	got := drawRewardTier(tiers, 4, func(n int) int {
		assert.Equal(t, 75, n)
		return 50
	})
	assert.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}

func TestDrawRewardTierNoWeight(t *testing.T) {
	assert.Nil(t, drawRewardTier(nil, 1, func(int) int { return 0 }))
	assert.Nil(t, drawRewardTier([]models.DailyRewardTier{{Weight: 0}}, 1, func(int) int { return 0 }))
}
