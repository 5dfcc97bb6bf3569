package storage

import (
	"context"
	"net/url"
	"reservation-center/internal/app/contracts"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/exceptions"
	"reservation-center/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ObjectPresigner is the part of *minio.Client used here.
type ObjectPresigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type avatarStorage struct {
	Presigner  ObjectPresigner
	BucketName string
	Expiry     time.Duration
	Log        *zap.Logger
}

// NewAvatarStorage accepts a nil presigner, in which case avatars are returned unchanged.
func NewAvatarStorage(presigner ObjectPresigner, bucketName string, expiry time.Duration, logger *zap.Logger) contracts.AvatarStorage {
	return &avatarStorage{
		Presigner:  presigner,
		BucketName: bucketName,
		Expiry:     expiry,
		Log:        logger,
	}
}

func (s *avatarStorage) ResolveAvatarURL(ctx context.Context, avatar string) (string, error) {
	if avatar == "" || isAbsoluteURL(avatar) || s.Presigner == nil {
		return avatar, nil
	}

	requestID := utils.GetRequestID(ctx)
	objectKey := strings.TrimPrefix(avatar, "/")

	presignedURL, err := s.Presigner.PresignedGetObject(ctx, s.BucketName, objectKey, s.Expiry, nil)
	if err != nil {
		s.Log.Error("avatarStorage.ResolveAvatarURL error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignObject(err, s.BucketName)
	}

	return presignedURL.String(), nil
}

func isAbsoluteURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
