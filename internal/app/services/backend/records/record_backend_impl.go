package records

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/utils"

	"go.uber.org/zap"
)

type recordBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewRecordBackendClient(client *backend.Client, logger *zap.Logger) contracts.RecordBackendClient {
	return &recordBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *recordBackendClient) FindRecordsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordBackendClient.FindRecordsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	queryParams := map[string]string{constvars.BackendQueryParamPatientID: patientID}
	records, err := backend.Get[[]models.MedicalRecord](ctx, c.Client, accessToken, constvars.BackendPathRecords, queryParams, constvars.ResourceRecords)
	if err != nil {
		return nil, err
	}

	c.Log.Info("recordBackendClient.FindRecordsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(records)),
	)
	return records, nil
}
