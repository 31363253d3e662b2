package services

import (
	"math"
	"time"

	"stable_backend/internal/models"
	"stable_backend/pkg/utils"
)

const (
	DefaultStallCapacity   = 20
	DefaultMaxMonthlyHours = 40.0
)

// StatsConfig holds the two capacity ceilings the dashboard percentages are
// measured against.
type StatsConfig struct {
	StallCapacity   int
	MaxMonthlyHours float64
}

// DefaultStatsConfig returns the stable's standard ceilings.
func DefaultStatsConfig() StatsConfig {
	return StatsConfig{StallCapacity: DefaultStallCapacity, MaxMonthlyHours: DefaultMaxMonthlyHours}
}

// ComputeDashboardStats derives the dashboard snapshot from the full horse and
// lesson collections. "This month" is the calendar month of now. Revenue sums
// every lesson price regardless of status. The function has no side effects.
func ComputeDashboardStats(horses []models.Horse, lessons []models.Lesson, now time.Time, cfg StatsConfig) models.DashboardStats {
	stats := models.DashboardStats{
		TotalHorses:      len(horses),
		TotalLessons:     len(lessons),
		StallCapacity:    cfg.StallCapacity,
		MaxMonthlyHours:  cfg.MaxMonthlyHours,
		HorseUtilization: make([]models.HorseUtilization, 0, len(horses)),
		GeneratedAt:      now,
	}

	for _, h := range horses {
		if h.Status == models.HorseStatusActive {
			stats.ActiveHorses++
		}
	}
	if cfg.StallCapacity > 0 {
		stats.OccupancyRate = utils.RoundTo(float64(stats.TotalHorses)/float64(cfg.StallCapacity)*100, 1)
	}

	type monthlyUsage struct {
		lessons int
		minutes int
	}
	usage := make(map[string]*monthlyUsage)

	for _, l := range lessons {
		stats.TotalRevenue += l.Price
		if !l.Date.SameMonth(now) {
			continue
		}
		stats.MonthlyLessons++
		stats.MonthlyRevenue += l.Price
		if l.HorseID == nil {
			continue
		}
		u, ok := usage[*l.HorseID]
		if !ok {
			u = &monthlyUsage{}
			usage[*l.HorseID] = u
		}
		u.lessons++
		u.minutes += l.Duration
	}

	for _, h := range horses {
		entry := models.HorseUtilization{HorseID: h.ID, HorseName: h.Name}
		if u, ok := usage[h.ID]; ok {
			hours := float64(u.minutes) / 60
			entry.LessonsThisMonth = u.lessons
			entry.HoursThisMonth = utils.RoundTo(hours, 1)
			entry.UtilizationRate = utilizationRate(hours, cfg.MaxMonthlyHours)
		}
		stats.HorseUtilization = append(stats.HorseUtilization, entry)
	}
	return stats
}

// utilizationRate is hours as a whole percentage of the ceiling, capped at 100.
func utilizationRate(hours, maxHours float64) float64 {
	if maxHours <= 0 {
		return 0
	}
	return math.Round(math.Min(hours/maxHours*100, 100))
}
