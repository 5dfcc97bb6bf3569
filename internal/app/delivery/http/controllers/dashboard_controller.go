package controllers

import (
	"context"
	"errors"
	"net/http"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/dto/responses"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DashboardController struct {
	Log               *zap.Logger
	DashboardRegistry contracts.DashboardRegistry
	SessionService    contracts.SessionService
	RequestTimeout    time.Duration
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, dashboardRegistry contracts.DashboardRegistry, sessionService contracts.SessionService, requestTimeout time.Duration) *DashboardController {
	onceDashboardController.Do(func() {
		if requestTimeout <= 0 {
			requestTimeout = 10 * time.Second
		}
		instance := &DashboardController{
			Log:               logger,
			DashboardRegistry: dashboardRegistry,
			SessionService:    sessionService,
			RequestTimeout:    requestTimeout,
		}
		dashboardControllerInstance = instance
	})
	return dashboardControllerInstance
}

// GetDashboard mounts the session's dashboard on first use and returns its
// view. A failed mount still answers 200: the view is loading and carries the
// error notification.
func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "GetDashboard")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	dashboard := ctrl.DashboardRegistry.Acquire(session)
	err := dashboard.Mount(ctx)
	if err != nil {
		ctrl.Log.Warn("DashboardController.GetDashboard mount failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, dashboard.View())
}

func (ctrl *DashboardController) SelectTab(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "SelectTab")
	if !ok {
		return
	}

	request := new(requests.SelectTab)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("DashboardController.SelectTab error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DashboardController.SelectTab validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err)))
		return
	}

	tab, err := models.ParseTab(request.Tab)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidTab(err, request.Tab))
		return
	}

	dashboard := ctrl.DashboardRegistry.Acquire(session)
	dashboard.SelectTab(tab)

	ctrl.Log.Info("DashboardController.SelectTab succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTabKey, string(tab)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectTabSuccessMessage, dashboard.View())
}

// CancelReservation always answers 200 once the request is valid; the outcome
// is in the notification.
func (ctrl *DashboardController) CancelReservation(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "CancelReservation")
	if !ok {
		return
	}

	request := &requests.CancelReservation{
		ReservationID: chi.URLParam(r, constvars.URLParamReservationID),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DashboardController.CancelReservation validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	dashboard := ctrl.DashboardRegistry.Acquire(session)
	notification := dashboard.Cancel(ctx, request.ReservationID)

	ctrl.Log.Info("DashboardController.CancelReservation processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, request.ReservationID),
		zap.String(constvars.LoggingNotificationKey, string(notification.Level)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelReservationRequestMessage, responses.CancelReservation{
		Notification: notification,
		Dashboard:    dashboard.View(),
	})
}

func (ctrl *DashboardController) AddTag(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "AddTag")
	if !ok {
		return
	}

	request := new(requests.AddTag)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("DashboardController.AddTag error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err)))
		return
	}

	dashboard := ctrl.DashboardRegistry.Acquire(session)
	localTags := dashboard.AddTag(request.Label)

	ctrl.Log.Info("DashboardController.AddTag succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTagCountKey, len(localTags)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddTagSuccessMessage, responses.AddTag{
		LocalTags: localTags,
		Tags:      dashboard.View().Tags,
	})
}

// RefreshDashboard mounts when nothing has been published yet and refreshes otherwise.
func (ctrl *DashboardController) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "RefreshDashboard")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	dashboard := ctrl.DashboardRegistry.Acquire(session)
	var err error
	if dashboard.IsMounted() {
		err = dashboard.Refresh(ctx)
	} else {
		err = dashboard.Mount(ctx)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DashboardController.RefreshDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshDashboardSuccessMessage, dashboard.View())
}

// Logout deletes the stored session and drops its dashboard.
func (ctrl *DashboardController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestScope(w, r, "Logout")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		ctrl.Log.Error("DashboardController.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.DashboardRegistry.Release(session.SessionID)

	ctrl.Log.Info("DashboardController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *DashboardController) requestScope(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("DashboardController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}
	ctrl.Log.Info("DashboardController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		ctrl.Log.Error("DashboardController."+method+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}
	return requestID, session, true
}
