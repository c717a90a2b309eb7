// internal/leveling/leveling.go
package leveling

import "math"

// Leveling is a pure threshold formula over lifetime earned besitos. It is a
// leaf package so both the repositories (leaderboard read model) and the
// services can use it without import cycles.
//
// level(total) = 1 + floor(sqrt(total / 100))
//
// Thresholds: level 2 at 100, level 3 at 400, level 4 at 900, and so on.
// The formula is monotonic: spending never lowers a level because levels are
// computed from total_earned, which only grows.

// LevelForPoints maps lifetime earned points to a level, starting at 1.
func LevelForPoints(totalEarned int) int {
	if totalEarned <= 0 {
		return 1
	}
	return 1 + int(math.Sqrt(float64(totalEarned)/100))
}

// PointsForLevel returns the minimum total_earned needed for a level.
// Levels below 2 need nothing.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := level - 1
	return n * n * 100
}

// PointsToNextLevel returns how many more earned points reach the next level.
func PointsToNextLevel(totalEarned int) int {
	next := PointsForLevel(LevelForPoints(totalEarned) + 1)
	return next - totalEarned
}
