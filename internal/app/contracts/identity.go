package contracts

import (
	"context"
	"reservation-center/internal/app/models"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, session *models.Session) (*models.UserProfile, error)
}
