package identity

import (
	"context"
	"errors"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserBackendClient struct {
	mock.Mock
}

func (m *MockUserBackendClient) FindCurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockAvatarStorage struct {
	mock.Mock
}

func (m *MockAvatarStorage) ResolveAvatarURL(ctx context.Context, avatar string) (string, error) {
	args := m.Called(ctx, avatar)
	return args.String(0), args.Error(1)
}

var testSession = &models.Session{SessionID: "s-1", UserID: "42", AccessToken: "token-42"}

func TestIdentityResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		users := new(MockUserBackendClient)
		avatars := new(MockAvatarStorage)
		users.On("FindCurrentUser", ctx, "token-42").Return(&models.UserProfile{ID: "42", Name: "Ann", Avatar: "42.png"}, nil)
		avatars.On("ResolveAvatarURL", ctx, "42.png").Return("http://minio/avatars/42.png?sig", nil)

		profile, err := NewIdentityResolver(users, avatars, zap.NewNop()).Resolve(ctx, testSession)
		require.NoError(t, err)
		assert.Equal(t, "42", profile.ID)
		assert.Equal(t, "http://minio/avatars/42.png?sig", profile.Avatar)
		assert.NotNil(t, profile.Tags)
	})

	t.Run("Never Cached", func(t *testing.T) {
		users := new(MockUserBackendClient)
		users.On("FindCurrentUser", ctx, "token-42").Return(&models.UserProfile{ID: "42", Name: "Ann"}, nil).Once()
		users.On("FindCurrentUser", ctx, "token-42").Return(&models.UserProfile{ID: "42", Name: "Ann Lee"}, nil).Once()
		resolver := NewIdentityResolver(users, nil, zap.NewNop())

		first, err := resolver.Resolve(ctx, testSession)
		require.NoError(t, err)
		second, err := resolver.Resolve(ctx, testSession)
		require.NoError(t, err)

		assert.Equal(t, "Ann", first.Name)
		assert.Equal(t, "Ann Lee", second.Name)
		users.AssertNumberOfCalls(t, "FindCurrentUser", 2)
	})

	t.Run("Avatar Failure Keeps Stored Value", func(t *testing.T) {
		users := new(MockUserBackendClient)
		avatars := new(MockAvatarStorage)
		users.On("FindCurrentUser", ctx, "token-42").Return(&models.UserProfile{ID: "42", Avatar: "42.png"}, nil)
		avatars.On("ResolveAvatarURL", ctx, "42.png").Return("", errors.New("minio down"))

		profile, err := NewIdentityResolver(users, avatars, zap.NewNop()).Resolve(ctx, testSession)
		require.NoError(t, err)
		assert.Equal(t, "42.png", profile.Avatar)
	})

	t.Run("Not Authenticated", func(t *testing.T) {
		users := new(MockUserBackendClient)
		users.On("FindCurrentUser", ctx, "token-42").Return(nil, exceptions.ErrBackendNotAuthenticated(errors.New("401"), "current user"))

		_, err := NewIdentityResolver(users, nil, zap.NewNop()).Resolve(ctx, testSession)
		assert.True(t, errors.Is(err, exceptions.ErrKindNotAuthenticated))
	})

	t.Run("Missing Session", func(t *testing.T) {
		users := new(MockUserBackendClient)

		_, err := NewIdentityResolver(users, nil, zap.NewNop()).Resolve(ctx, nil)
		assert.True(t, errors.Is(err, exceptions.ErrKindNotAuthenticated))
		users.AssertNotCalled(t, "FindCurrentUser")
	})
}

func TestIdentityResolver_RejectsProfileWithoutID(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserBackendClient)
	avatars := new(MockAvatarStorage)
	users.On("FindCurrentUser", ctx, "token-42").Return(&models.UserProfile{Name: "Ann"}, nil)

	profile, err := NewIdentityResolver(users, avatars, zap.NewNop()).Resolve(ctx, testSession)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, exceptions.ErrKindNotAuthenticated))
	avatars.AssertNotCalled(t, "ResolveAvatarURL", mock.Anything, mock.Anything)
}
