package aggregates

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type aggregateLoader struct {
	ReservationBackendClient contracts.ReservationBackendClient
	RecordBackendClient      contracts.RecordBackendClient
	BillBackendClient        contracts.BillBackendClient
	Log                      *zap.Logger
}

func NewAggregateLoader(
	reservationBackendClient contracts.ReservationBackendClient,
	recordBackendClient contracts.RecordBackendClient,
	billBackendClient contracts.BillBackendClient,
	logger *zap.Logger,
) contracts.AggregateLoader {
	return &aggregateLoader{
		ReservationBackendClient: reservationBackendClient,
		RecordBackendClient:      recordBackendClient,
		BillBackendClient:        billBackendClient,
		Log:                      logger,
	}
}

// Load fetches the three collections concurrently and returns either all of
// them or a PartialFailure naming the first collection that failed.
func (l *aggregateLoader) Load(ctx context.Context, session *models.Session, patientID string) (*models.ReservationAggregate, error) {
	requestID := utils.GetRequestID(ctx)
	l.Log.Info("aggregateLoader.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}

	var (
		reservations []models.Reservation
		records      []models.MedicalRecord
		bills        []models.Bill
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		result, err := l.ReservationBackendClient.FindReservationsByPatientID(groupCtx, session.AccessToken, patientID)
		if err != nil {
			return exceptions.ErrAggregatePartialFailure(err, constvars.ResourceReservations)
		}
		reservations = result
		return nil
	})
	group.Go(func() error {
		result, err := l.RecordBackendClient.FindRecordsByPatientID(groupCtx, session.AccessToken, patientID)
		if err != nil {
			return exceptions.ErrAggregatePartialFailure(err, constvars.ResourceRecords)
		}
		records = result
		return nil
	})
	group.Go(func() error {
		result, err := l.BillBackendClient.FindBillsByPatientID(groupCtx, session.AccessToken, patientID)
		if err != nil {
			return exceptions.ErrAggregatePartialFailure(err, constvars.ResourceBills)
		}
		bills = result
		return nil
	})

	err := group.Wait()
	if err != nil {
		l.Log.Error("aggregateLoader.Load error loading aggregate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	aggregate := &models.ReservationAggregate{
		Reservations: reservations,
		Records:      records,
		Bills:        bills,
	}
	normalize(aggregate)

	l.Log.Info("aggregateLoader.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingReservationCountKey, len(aggregate.Reservations)),
		zap.Int(constvars.LoggingRecordCountKey, len(aggregate.Records)),
		zap.Int(constvars.LoggingBillCountKey, len(aggregate.Bills)),
	)
	return aggregate, nil
}

// normalize replaces collections the backend answered with null by empty ones.
func normalize(aggregate *models.ReservationAggregate) {
	if aggregate.Reservations == nil {
		aggregate.Reservations = []models.Reservation{}
	}
	if aggregate.Records == nil {
		aggregate.Records = []models.MedicalRecord{}
	}
	if aggregate.Bills == nil {
		aggregate.Bills = []models.Bill{}
	}
}
