package identity

import (
	"context"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"

	"go.uber.org/zap"
)

type identityResolver struct {
	UserBackendClient contracts.UserBackendClient
	AvatarStorage     contracts.AvatarStorage
	Log               *zap.Logger
}

func NewIdentityResolver(userBackendClient contracts.UserBackendClient, avatarStorage contracts.AvatarStorage, logger *zap.Logger) contracts.IdentityResolver {
	return &identityResolver{
		UserBackendClient: userBackendClient,
		AvatarStorage:     avatarStorage,
		Log:               logger,
	}
}

// Resolve always asks the backend; profiles are never cached.
func (r *identityResolver) Resolve(ctx context.Context, session *models.Session) (*models.UserProfile, error) {
	requestID := utils.GetRequestID(ctx)
	if session == nil || session.AccessToken == "" {
		r.Log.Error("identityResolver.Resolve called without session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMissingSessionData(nil)
	}

	r.Log.Info("identityResolver.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	profile, err := r.UserBackendClient.FindCurrentUser(ctx, session.AccessToken)
	if err != nil {
		r.Log.Error("identityResolver.Resolve error fetching current user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	// Without an id there is no patient to load for.
	if profile == nil || profile.ID == "" {
		r.Log.Error("identityResolver.Resolve current user has no id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBackendNotAuthenticated(nil, constvars.ResourceCurrentUser)
	}

	if profile.Tags == nil {
		profile.Tags = []models.Tag{}
	}

	if r.AvatarStorage != nil {
		avatar, err := r.AvatarStorage.ResolveAvatarURL(ctx, profile.Avatar)
		if err != nil {
			// The stored value is still a usable fallback.
			r.Log.Warn("identityResolver.Resolve keeping unresolved avatar",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			profile.Avatar = avatar
		}
	}

	r.Log.Info("identityResolver.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return profile, nil
}
