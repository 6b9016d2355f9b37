package handlers

import (
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"github.com/lucasvieira94/nola-god-level/internal/summarizer"
	"go.uber.org/zap"
)

var (
	analyticsRepo repo.AnalyticsRepository
	metricsRepo   repo.MetricsRepository
	dashboardRepo repo.DashboardRepository
	userRepo      repo.UserRepository
	summarySvc    *summarizer.Service

	log = zap.NewNop()

	// nowFunc anchors the dashboard-metrics 30-day window; tests swap it
	// for a fixed clock.
	nowFunc = time.Now
)

func SetAnalyticsRepo(r repo.AnalyticsRepository) {
	analyticsRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetDashboardRepo(r repo.DashboardRepository) {
	dashboardRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSummaryService(s *summarizer.Service) {
	summarySvc = s
}

func SetLogger(l *zap.Logger) {
	log = l
}

func SetNowFunc(f func() time.Time) {
	nowFunc = f
}
