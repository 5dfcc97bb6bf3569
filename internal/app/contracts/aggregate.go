package contracts

import (
	"context"
	"reservation-center/internal/app/models"
)

type AggregateLoader interface {
	Load(ctx context.Context, session *models.Session, patientID string) (*models.ReservationAggregate, error)
}
