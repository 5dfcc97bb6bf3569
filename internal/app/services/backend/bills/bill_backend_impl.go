package bills

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/utils"

	"go.uber.org/zap"
)

type billBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewBillBackendClient(client *backend.Client, logger *zap.Logger) contracts.BillBackendClient {
	return &billBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *billBackendClient) FindBillsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Bill, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("billBackendClient.FindBillsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	queryParams := map[string]string{constvars.BackendQueryParamPatientID: patientID}
	bills, err := backend.Get[[]models.Bill](ctx, c.Client, accessToken, constvars.BackendPathBills, queryParams, constvars.ResourceBills)
	if err != nil {
		return nil, err
	}

	c.Log.Info("billBackendClient.FindBillsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBillCountKey, len(bills)),
	)
	return bills, nil
}
