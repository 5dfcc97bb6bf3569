package contracts

import (
	"context"
	"reservation-center/internal/app/models"
)

type NotifierService interface {
	Publish(ctx context.Context, notification *models.Notification) error
}
