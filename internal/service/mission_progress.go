// internal/service/mission_progress.go
package service

import (
	"time"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// applyActionToMission advances one mission instance for one player action.
// It mutates the instance in place (counters, status, percentage, timestamps)
// and reports whether anything changed and whether the mission completed just
// now. Expired instances are flipped to EXPIRED and never advanced.
func applyActionToMission(um *models.UserMission, action models.ActionType, value int, now time.Time) (changed, completedNow bool) {
	if um.Status != models.UserMissionStatusAvailable && um.Status != models.UserMissionStatusInProgress {
		return false, false
	}

	if um.ExpiresAt != nil && now.After(*um.ExpiresAt) {
		um.Status = models.UserMissionStatusExpired
		return true, false
	}

	matched := false
	for i := range um.Objectives {
		c := &um.Objectives[i]
		if c.Objective == nil || c.Objective.ActionType != action {
			continue
		}
		if c.Progress >= c.Objective.Required {
			continue
		}
		c.Progress += value
		if c.Progress > c.Objective.Required {
			c.Progress = c.Objective.Required
		}
		matched = true
	}
	if !matched {
		return false, false
	}

	if um.Status == models.UserMissionStatusAvailable {
		um.Status = models.UserMissionStatusInProgress
		t := now
		um.StartedAt = &t
	}

	um.ProgressPercentage = missionProgressPercentage(um)

	if allObjectivesMet(um) {
		um.Status = models.UserMissionStatusCompleted
		t := now
		um.CompletedAt = &t
		um.ProgressPercentage = 100
		return true, true
	}
	return true, false
}

func allObjectivesMet(um *models.UserMission) bool {
	if len(um.Objectives) == 0 {
		return false
	}
	for i := range um.Objectives {
		c := &um.Objectives[i]
		if c.Objective == nil || c.Progress < c.Objective.Required {
			return false
		}
	}
	return true
}

// missionProgressPercentage is the share of fully met objectives. An
// objective counts only once its required total is reached; partial progress
// on an objective contributes nothing.
func missionProgressPercentage(um *models.UserMission) float64 {
	if len(um.Objectives) == 0 {
		return 0
	}
	met := 0
	for i := range um.Objectives {
		c := &um.Objectives[i]
		if c.Objective == nil || c.Objective.Required <= 0 {
			continue
		}
		if c.Progress >= c.Objective.Required {
			met++
		}
	}
	return float64(met) / float64(len(um.Objectives)) * 100
}
