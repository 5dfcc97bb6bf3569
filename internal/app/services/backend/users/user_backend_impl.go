package users

import (
	"context"
	"errors"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"

	"go.uber.org/zap"
)

var errMissingUserID = errors.New("current user has no id")

type userBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewUserBackendClient(client *backend.Client, logger *zap.Logger) contracts.UserBackendClient {
	return &userBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *userBackendClient) FindCurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userBackendClient.FindCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := backend.Get[models.UserProfile](ctx, c.Client, accessToken, constvars.BackendPathCurrentUser, nil, constvars.ResourceCurrentUser)
	if err != nil {
		return nil, err
	}
	if profile.ID == "" {
		c.Log.Error("userBackendClient.FindCurrentUser backend returned no user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBackendNotAuthenticated(errMissingUserID, constvars.ResourceCurrentUser)
	}

	c.Log.Info("userBackendClient.FindCurrentUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return &profile, nil
}
