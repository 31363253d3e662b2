package models

import "time"

// DashboardStats is a derived snapshot; it is never persisted.
type DashboardStats struct {
	TotalHorses      int                `json:"total_horses"`
	ActiveHorses     int                `json:"active_horses"`
	OccupancyRate    float64            `json:"occupancy_rate"`
	TotalRevenue     float64            `json:"total_revenue"`
	MonthlyRevenue   float64            `json:"monthly_revenue"`
	TotalLessons     int                `json:"total_lessons"`
	MonthlyLessons   int                `json:"monthly_lessons"`
	HorseUtilization []HorseUtilization `json:"horse_utilization"`
	StallCapacity    int                `json:"stall_capacity"`
	MaxMonthlyHours  float64            `json:"max_monthly_hours"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// HorseUtilization is the per-horse share of the monthly hours ceiling.
type HorseUtilization struct {
	HorseID          string  `json:"horse_id"`
	HorseName        string  `json:"horse_name"`
	LessonsThisMonth int     `json:"lessons_this_month"`
	HoursThisMonth   float64 `json:"hours_this_month"`
	UtilizationRate  float64 `json:"utilization_rate"`
}
