package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"reservation-center/internal/app/config"
	"reservation-center/internal/app/delivery/http/controllers"
	"reservation-center/internal/app/delivery/http/middlewares"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/app/services/backend/bills"
	"reservation-center/internal/app/services/backend/records"
	"reservation-center/internal/app/services/backend/reservations"
	"reservation-center/internal/app/services/backend/users"
	"reservation-center/internal/app/services/core/aggregates"
	"reservation-center/internal/app/services/core/dashboard"
	"reservation-center/internal/app/services/core/identity"
	reservationTransitions "reservation-center/internal/app/services/core/reservations"
	"reservation-center/internal/app/services/core/session"
	"reservation-center/internal/app/services/mockbackend"
	redisRepository "reservation-center/internal/app/services/shared/redis"
	"reservation-center/internal/app/services/shared/storage"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/utils"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

type dashboardEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    models.DashboardView `json:"data"`
}

type testServer struct {
	router   *chi.Mux
	store    *mockbackend.Store
	registry *dashboard.Registry
	token    string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()

	store := mockbackend.NewSeededStore(time.Now())
	backendServer := httptest.NewServer(mockbackend.NewServer(store, log))
	t.Cleanup(backendServer.Close)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })
	sessionService := session.NewSessionService(redisRepository.NewRedisRepository(redisClient), log)
	require.NoError(t, sessionService.CreateSession(context.Background(), &models.Session{
		SessionID:   "s-42",
		UserID:      "42",
		AccessToken: mockbackend.SeedToken,
	}, time.Hour))

	token, err := utils.GenerateSessionJWT("s-42", testJWTSecret, 1)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{EndpointPrefix: "api", Version: "v1", MaxRequests: 1000},
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	client := backend.NewClient(config.Backend{BaseUrl: backendServer.URL, RequestTimeoutInSeconds: 5}, log)
	reservationClient := reservations.NewReservationBackendClient(client, log)
	registry := dashboard.NewRegistry(dashboard.Dependencies{
		IdentityResolver: identity.NewIdentityResolver(users.NewUserBackendClient(client, log), storage.NewAvatarStorage(nil, "avatars", time.Minute, log), log),
		AggregateLoader: aggregates.NewAggregateLoader(
			reservationClient,
			records.NewRecordBackendClient(client, log),
			bills.NewBillBackendClient(client, log),
			log,
		),
		ReservationTransitionService: reservationTransitions.NewTransitionService(reservationClient, log),
		Log:                          log,
	}, time.Hour)

	dashboardController := &controllers.DashboardController{
		Log:               log,
		DashboardRegistry: registry,
		SessionService:    sessionService,
		RequestTimeout:    5 * time.Second,
	}

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(log, sessionService, registry, internalConfig), dashboardController, controllers.NewHealthController("v1"))

	return &testServer{router: router, store: store, registry: registry, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeDashboard(t *testing.T, rr *httptest.ResponseRecorder) dashboardEnvelope {
	t.Helper()
	var envelope dashboardEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

func TestDashboardRouter_GetDashboard(t *testing.T) {
	server := setupTestServer(t)

	rr := server.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

	envelope := decodeDashboard(t, rr)
	assert.True(t, envelope.Success)
	assert.False(t, envelope.Data.Loading)
	assert.Equal(t, "42", envelope.Data.Profile.ID)
	assert.Equal(t, models.TabReservations, envelope.Data.SelectedTab)
	assert.Len(t, envelope.Data.VisibleCollection, 2)
}

func TestDashboardRouter_RequiresAuthentication(t *testing.T) {
	server := setupTestServer(t)
	server.token = "not-a-jwt"

	rr := server.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDashboardRouter_SelectTab(t *testing.T) {
	server := setupTestServer(t)
	server.do(t, http.MethodGet, "/api/v1/dashboard", nil)

	rr := server.do(t, http.MethodPut, "/api/v1/dashboard/tab", []byte(`{"tab":"bills"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeDashboard(t, rr)
	assert.Equal(t, models.TabBills, envelope.Data.SelectedTab)
	assert.Len(t, envelope.Data.VisibleCollection, 1)

	rr = server.do(t, http.MethodPut, "/api/v1/dashboard/tab", []byte(`{"tab":"profile"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do(t, http.MethodPut, "/api/v1/dashboard/tab", []byte(`{"tab":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDashboardRouter_CancelReservation(t *testing.T) {
	server := setupTestServer(t)
	server.do(t, http.MethodGet, "/api/v1/dashboard", nil)

	rr := server.do(t, http.MethodPost, "/api/v1/dashboard/reservations/7/cancel", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Data struct {
			Notification models.Notification  `json:"notification"`
			Dashboard    models.DashboardView `json:"dashboard"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, models.NotificationLevelSuccess, envelope.Data.Notification.Level)
	assert.Equal(t, "7", envelope.Data.Notification.ReservationID)

	stored, ok := server.store.FindReservation("7")
	require.True(t, ok)
	assert.Equal(t, models.ReservationStatusCancelled, stored.Status)

	rr = server.do(t, http.MethodPost, "/api/v1/dashboard/reservations/7/cancel", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, models.NotificationLevelFailure, envelope.Data.Notification.Level)
	assert.Equal(t, "reservation cancellation failed: cannot move reservation from cancelled to cancelled", envelope.Data.Notification.Message)
}

func TestDashboardRouter_AddTag(t *testing.T) {
	server := setupTestServer(t)
	server.do(t, http.MethodGet, "/api/v1/dashboard", nil)

	for _, body := range []string{`{"label":"vip"}`, `{"label":"vip"}`, `{"label":"  "}`} {
		rr := server.do(t, http.MethodPost, "/api/v1/dashboard/tags", []byte(body))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := server.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	envelope := decodeDashboard(t, rr)
	assert.Equal(t, []models.LocalTag{{Key: "new-0", Label: "vip"}}, envelope.Data.LocalTags)
	assert.Len(t, envelope.Data.Tags, 3)
}

func TestDashboardRouter_Refresh(t *testing.T) {
	server := setupTestServer(t)

	rr := server.do(t, http.MethodPost, "/api/v1/dashboard/refresh", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeDashboard(t, rr).Data.Loading)
}

func TestDashboardRouter_Logout(t *testing.T) {
	server := setupTestServer(t)
	server.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Len(t, server.registry.Snapshot(), 1)

	rr := server.do(t, http.MethodDelete, "/api/v1/dashboard/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, server.registry.Snapshot())

	rr = server.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, server.registry.Snapshot())
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	server := setupTestServer(t)

	rr := server.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = server.do(t, http.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
