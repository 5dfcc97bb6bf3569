package reservations

import (
	"context"
	"errors"
	"net/http"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/dto/responses"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type reservationBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewReservationBackendClient(client *backend.Client, logger *zap.Logger) contracts.ReservationBackendClient {
	return &reservationBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *reservationBackendClient) FindReservationsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationBackendClient.FindReservationsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	queryParams := map[string]string{constvars.BackendQueryParamPatientID: patientID}
	reservations, err := backend.Get[[]models.Reservation](ctx, c.Client, accessToken, constvars.BackendPathReservations, queryParams, constvars.ResourceReservations)
	if err != nil {
		return nil, err
	}

	c.Log.Info("reservationBackendClient.FindReservationsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingReservationCountKey, len(reservations)),
	)
	return reservations, nil
}

func (c *reservationBackendClient) ChangeReservationStatus(ctx context.Context, accessToken string, request *requests.ChangeReservationStatus) (*responses.ChangeReservationStatus, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reservationBackendClient.ChangeReservationStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, request.AID),
		zap.Any(constvars.LoggingRequestKey, request.Action),
	)

	restyRequest, err := c.Client.Request(ctx, accessToken, constvars.ResourceReservationStatus)
	if err != nil {
		return nil, err
	}

	resp, err := restyRequest.SetBody(request).Post(constvars.BackendPathReservationStatus)
	if err != nil {
		c.Log.Error("reservationBackendClient.ChangeReservationStatus error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReservationIDKey, request.AID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendSendRequest(err, constvars.ResourceReservationStatus)
	}

	body := resp.Body()
	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized, code == http.StatusForbidden, code == http.StatusNotFound, code >= http.StatusInternalServerError:
		c.Log.Error("reservationBackendClient.ChangeReservationStatus unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReservationIDKey, request.AID),
			zap.Int(constvars.LoggingStatusCodeKey, code),
		)
		return nil, backend.StatusError(resp, constvars.ResourceReservationStatus)
	case !gjson.ValidBytes(body) || !gjson.GetBytes(body, constvars.BackendResponseSuccessPath).Exists():
		// Any other status must still carry a {success, message} answer.
		err := errors.New(resp.Status())
		c.Log.Error("reservationBackendClient.ChangeReservationStatus unreadable response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, code),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err, constvars.ResourceReservationStatus)
	}

	result := &responses.ChangeReservationStatus{
		Success: gjson.GetBytes(body, constvars.BackendResponseSuccessPath).Bool(),
		Message: gjson.GetBytes(body, constvars.BackendResponseMessagePath).String(),
	}
	if result.Message == "" {
		result.Message = gjson.GetBytes(body, constvars.BackendResponseErrMessagePath).String()
	}

	c.Log.Info("reservationBackendClient.ChangeReservationStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, request.AID),
		zap.Bool(constvars.LoggingSuccessKey, result.Success),
	)
	return result, nil
}
