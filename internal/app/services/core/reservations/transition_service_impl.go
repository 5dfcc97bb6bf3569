package reservations

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type transitionService struct {
	ReservationBackendClient contracts.ReservationBackendClient
	Log                      *zap.Logger
	now                      func() time.Time
}

func NewTransitionService(reservationBackendClient contracts.ReservationBackendClient, logger *zap.Logger) contracts.ReservationTransitionService {
	return NewTransitionServiceWithClock(reservationBackendClient, logger, time.Now)
}

func NewTransitionServiceWithClock(reservationBackendClient contracts.ReservationBackendClient, logger *zap.Logger, now func() time.Time) contracts.ReservationTransitionService {
	return &transitionService{
		ReservationBackendClient: reservationBackendClient,
		Log:                      logger,
		now:                      now,
	}
}

// Cancel submits a single cancellation. The reservation's current status is
// not checked here; the backend is the authority on which transitions are legal.
func (s *transitionService) Cancel(ctx context.Context, session *models.Session, reservationID string) (*models.TransitionResult, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("transitionService.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)

	if session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}

	endTime := s.now().Format(constvars.DateTimeLayout)
	request := &requests.ChangeReservationStatus{
		AID: reservationID,
		Action: requests.ReservationStatusAction{
			Status:  string(models.ReservationStatusCancelled),
			EndTime: endTime,
		},
	}

	result, err := s.ReservationBackendClient.ChangeReservationStatus(ctx, session.AccessToken, request)
	if err != nil {
		s.Log.Error("transitionService.Cancel error submitting status change",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReservationIDKey, reservationID),
			zap.Error(err),
		)
		return nil, err
	}

	if !result.Success {
		reason := result.Message
		if reason == "" {
			reason = constvars.ResponseUnknown
		}
		s.Log.Warn("transitionService.Cancel rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReservationIDKey, reservationID),
			zap.String(constvars.LoggingErrorMessageKey, reason),
		)
		return nil, exceptions.ErrReservationTransitionDenied(reason)
	}

	s.Log.Info("transitionService.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, reservationID),
	)
	return &models.TransitionResult{
		ReservationID: reservationID,
		Status:        models.ReservationStatusCancelled,
		EndTime:       endTime,
		Message:       result.Message,
	}, nil
}
