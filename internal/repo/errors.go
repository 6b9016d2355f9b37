package repo

import "errors"

var (
	ErrDashboardNotFound      = errors.New("dashboard not found")
	ErrDuplicateDashboardName = errors.New("a dashboard with this name already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateUsername      = errors.New("username already exists")
	ErrUnsupportedMetric      = errors.New("unsupported metric")
)
