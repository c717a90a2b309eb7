// internal/service/reward_draw.go
package service

import "github.com/carlostoek/diana-gamification-be/internal/models"

// streakBonusCap bounds how many streak days can add bonus weight to a tier,
// so very long streaks do not make rare tiers near-certain.
const streakBonusCap = 7

// effectiveWeight is the tier's draw weight for a player on the given streak.
// Each consecutive day past the first adds StreakBonusWeight, capped.
func effectiveWeight(tier *models.DailyRewardTier, streak int) int {
	bonusDays := streak - 1
	if bonusDays < 0 {
		bonusDays = 0
	}
	if bonusDays > streakBonusCap {
		bonusDays = streakBonusCap
	}
	return tier.Weight + tier.StreakBonusWeight*bonusDays
}

// drawRewardTier picks one tier by weighted random selection. intn must
// behave like rand.IntN: return a uniform value in [0, n). Injected so tests
// can drive the draw deterministically.
func drawRewardTier(tiers []models.DailyRewardTier, streak int, intn func(n int) int) *models.DailyRewardTier {
	total := 0
	for i := range tiers {
		total += effectiveWeight(&tiers[i], streak)
	}
	if total <= 0 {
		return nil
	}

	roll := intn(total)
	for i := range tiers {
		roll -= effectiveWeight(&tiers[i], streak)
		if roll < 0 {
			return &tiers[i]
		}
	}
	// Unreachable with a well-behaved intn.
	return &tiers[len(tiers)-1]
}
