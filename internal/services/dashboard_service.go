package services

import (
	"context"
	"time"

	"stable_backend/internal/models"
	"stable_backend/internal/repositories"
)

// DashboardObserver receives every computed snapshot; *metrics.Metrics satisfies it.
type DashboardObserver interface {
	ObserveDashboard(stats models.DashboardStats)
}

// DashboardService assembles the dashboard from the current store contents.
type DashboardService interface {
	// GetStats computes the snapshot as of asOf, or as of now when asOf is nil.
	GetStats(ctx context.Context, asOf *time.Time) (*models.DashboardStats, error)
}

type dashboardService struct {
	horseRepo  repositories.HorseRepository
	lessonRepo repositories.LessonRepository
	cfg        StatsConfig
	observer   DashboardObserver
	now        func() time.Time
}

// NewDashboardService creates a new instance of DashboardService. observer may be nil.
func NewDashboardService(horseRepo repositories.HorseRepository, lessonRepo repositories.LessonRepository, cfg StatsConfig, observer DashboardObserver) DashboardService {
	return &dashboardService{
		horseRepo:  horseRepo,
		lessonRepo: lessonRepo,
		cfg:        cfg,
		observer:   observer,
		now:        time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, asOf *time.Time) (*models.DashboardStats, error) {
	horses, err := s.horseRepo.GetHorses(ctx, models.HorseFilters{})
	if err != nil {
		return nil, storageError(err, nil)
	}
	lessons, err := s.lessonRepo.GetLessons(ctx, models.LessonFilters{})
	if err != nil {
		return nil, storageError(err, nil)
	}

	now := s.now()
	if asOf != nil {
		now = *asOf
	}
	stats := ComputeDashboardStats(horses, lessons, now, s.cfg)
	if s.observer != nil && asOf == nil {
		s.observer.ObserveDashboard(stats)
	}
	return &stats, nil
}
