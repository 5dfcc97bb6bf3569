package contracts

import (
	"context"
	"reservation-center/internal/app/models"
	"time"
)

// DashboardController holds the dashboard state of a single session.
type DashboardController interface {
	Mount(ctx context.Context) error
	IsMounted() bool
	Refresh(ctx context.Context) error
	SelectTab(tab models.Tab)
	Cancel(ctx context.Context, reservationID string) models.Notification
	AddTag(label string) []models.LocalTag
	View() models.DashboardView
}

type DashboardRegistry interface {
	Acquire(session *models.Session) DashboardController
	Release(sessionID string)
	Snapshot() []DashboardController
	EvictIdle(now time.Time) int
}
