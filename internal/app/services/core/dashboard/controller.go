package dashboard

import (
	"context"
	"errors"
	"fmt"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/core/tags"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dependencies are shared by every controller a Registry creates.
type Dependencies struct {
	IdentityResolver             contracts.IdentityResolver
	AggregateLoader              contracts.AggregateLoader
	ReservationTransitionService contracts.ReservationTransitionService
	NotifierService              contracts.NotifierService
	Log                          *zap.Logger
	Now                          func() time.Time
}

// Controller holds the dashboard of one session: the published
// {profile, aggregate} pair, the selected tab, local tags and the last
// notification.
type Controller struct {
	deps Dependencies

	// refreshMu serialises resolve+load so an older refresh cannot publish
	// over a newer one.
	refreshMu sync.Mutex

	mu           sync.RWMutex
	session      *models.Session
	profile      *models.UserProfile
	aggregate    *models.ReservationAggregate
	selectedTab  models.Tab
	annotator    *tags.Annotator
	notification *models.Notification
}

func NewController(session *models.Session, deps Dependencies) *Controller {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Controller{
		deps:        deps,
		session:     session,
		selectedTab: models.TabReservations,
		annotator:   tags.NewAnnotator(),
	}
}

func (c *Controller) currentSession() *models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Controller) sessionID() string {
	if session := c.currentSession(); session != nil {
		return session.SessionID
	}
	return ""
}

func (c *Controller) setSession(session *models.Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

func (c *Controller) IsMounted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile != nil && c.aggregate.IsComplete()
}

// Mount loads the dashboard unless a snapshot is already published. A failed
// mount leaves the controller loading and records an error notification.
func (c *Controller) Mount(ctx context.Context) error {
	if c.IsMounted() {
		return nil
	}

	err := c.Refresh(ctx)
	if err != nil {
		c.notify(ctx, c.errorNotification(err, ""))
		return err
	}
	return nil
}

// Refresh re-runs resolve and load and publishes both results together. On
// any failure the previously published pair stays visible.
func (c *Controller) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	requestID := utils.GetRequestID(ctx)
	session := c.currentSession()
	if session == nil {
		c.deps.Log.Error("dashboard.Controller.Refresh session not set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrMissingSessionData(nil)
	}
	c.deps.Log.Info("dashboard.Controller.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	profile, err := c.deps.IdentityResolver.Resolve(ctx, session)
	if err != nil {
		c.deps.Log.Error("dashboard.Controller.Refresh error resolving identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	aggregate, err := c.deps.AggregateLoader.Load(ctx, session, profile.ID)
	if err != nil {
		c.deps.Log.Error("dashboard.Controller.Refresh error loading aggregate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	c.profile = profile
	c.aggregate = aggregate
	c.mu.Unlock()

	c.deps.Log.Info("dashboard.Controller.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return nil
}

// SelectTab is idempotent and never touches the snapshot. Unknown tabs are ignored.
func (c *Controller) SelectTab(tab models.Tab) {
	if _, ok := projectors[tab]; !ok {
		return
	}
	c.mu.Lock()
	c.selectedTab = tab
	c.mu.Unlock()
}

func (c *Controller) AddTag(label string) []models.LocalTag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.annotator.Add(label)
}

// Cancel asks the backend to cancel reservationID and reports the outcome as a
// notification. Only an accepted cancellation triggers a refresh.
func (c *Controller) Cancel(ctx context.Context, reservationID string) models.Notification {
	requestID := utils.GetRequestID(ctx)
	c.deps.Log.Info("dashboard.Controller.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)

	var (
		notification *models.Notification
		err          error
	)
	if session := c.currentSession(); session != nil {
		_, err = c.deps.ReservationTransitionService.Cancel(ctx, session, reservationID)
	} else {
		err = exceptions.ErrMissingSessionData(nil)
	}
	switch {
	case err == nil:
		refreshErr := c.Refresh(ctx)
		if refreshErr != nil {
			c.deps.Log.Warn("dashboard.Controller.Cancel refresh after cancellation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReservationIDKey, reservationID),
				zap.Error(refreshErr),
			)
		}
		notification = c.newNotification(models.NotificationLevelSuccess, constvars.NotificationReservationCancelled, reservationID)
	case errors.Is(err, exceptions.ErrKindInvalidTransition):
		notification = c.newNotification(models.NotificationLevelFailure,
			fmt.Sprintf(constvars.ErrClientReservationCancelFailed, clientMessage(err)), reservationID)
	default:
		notification = c.errorNotification(err, reservationID)
	}

	c.notify(ctx, notification)

	c.deps.Log.Info("dashboard.Controller.Cancel finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
		zap.String(constvars.LoggingNotificationKey, string(notification.Level)),
	)
	return *notification
}

// View returns a copy of the current state; callers may keep it.
func (c *Controller) View() models.DashboardView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	localTags := c.annotator.Tags()
	view := models.DashboardView{
		Loading:     c.profile == nil || !c.aggregate.IsComplete(),
		SelectedTab: c.selectedTab,
		LocalTags:   localTags,
		Tags:        tags.Merge(nil, localTags),
	}

	if !view.Loading {
		view.Profile = c.profile.Clone()
		view.Address = c.profile.Geographic.Display()
		view.Tags = tags.Merge(c.profile.Tags, localTags)
		view.VisibleCollection = project(c.selectedTab, c.aggregate)
	}

	if c.notification != nil {
		notification := *c.notification
		view.Notification = &notification
	}
	return view
}

func (c *Controller) newNotification(level models.NotificationLevel, message, reservationID string) *models.Notification {
	return &models.Notification{
		ID:            uuid.NewString(),
		SessionID:     c.sessionID(),
		Level:         level,
		Message:       message,
		ReservationID: reservationID,
		CreatedAt:     c.deps.Now(),
	}
}

func (c *Controller) errorNotification(err error, reservationID string) *models.Notification {
	return c.newNotification(models.NotificationLevelError,
		fmt.Sprintf(constvars.ErrClientGenericNotification, clientMessage(err)), reservationID)
}

// notify records the notification and publishes it. Publishing is best effort.
func (c *Controller) notify(ctx context.Context, notification *models.Notification) {
	c.mu.Lock()
	c.notification = notification
	c.mu.Unlock()

	if c.deps.NotifierService == nil {
		return
	}
	err := c.deps.NotifierService.Publish(ctx, notification)
	if err != nil {
		c.deps.Log.Warn("dashboard.Controller.notify publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
