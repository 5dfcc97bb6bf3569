package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reservation-center/internal/app/config"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserClient(t *testing.T, handler http.HandlerFunc) *userBackendClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := backend.NewClient(config.Backend{BaseUrl: server.URL, RequestTimeoutInSeconds: 5}, zap.NewNop())
	return NewUserBackendClient(client, zap.NewNop()).(*userBackendClient)
}

func TestFindCurrentUser(t *testing.T) {
	client := newTestUserClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/currentUser", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"42","name":"Ann","avatar":"42.png","geographic":{"city":"Hangzhou"},"tags":[{"key":"0","label":"calm"}]}}`))
	})

	profile, err := client.FindCurrentUser(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "42", profile.ID)
	assert.Equal(t, "Hangzhou", profile.Geographic.City)
	assert.Len(t, profile.Tags, 1)
}

func TestFindCurrentUser_NotAuthenticated(t *testing.T) {
	client := newTestUserClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.FindCurrentUser(context.Background(), "expired")
	assert.True(t, errors.Is(err, exceptions.ErrKindNotAuthenticated))
}

func TestFindCurrentUser_EmptyIdentity(t *testing.T) {
	for name, body := range map[string]string{
		"Null Data":  `{"success":true,"data":null}`,
		"Missing Id": `{"success":true,"data":{"name":"Ann"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newTestUserClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			profile, err := client.FindCurrentUser(context.Background(), "token")
			assert.Nil(t, profile)
			assert.True(t, errors.Is(err, exceptions.ErrKindNotAuthenticated))
		})
	}
}
