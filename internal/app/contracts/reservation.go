package contracts

import (
	"context"
	"reservation-center/internal/app/models"
)

type ReservationTransitionService interface {
	Cancel(ctx context.Context, session *models.Session, reservationID string) (*models.TransitionResult, error)
}
