package bills

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

func newTestBillClient(t *testing.T, handler http.HandlerFunc) *billBackendClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := backend.NewClient(config.Backend{BaseUrl: server.URL, RequestTimeoutInSeconds: 5}, zap.NewNop())
	return NewBillBackendClient(client, zap.NewNop()).(*billBackendClient)
}

func TestFindBillsByPatientID(t *testing.T) {
	client := newTestBillClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bills", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("patient_id"))
		w.Write([]byte(`{"success":true,"data":[{"id":"b1","patient_id":"42","amount":120.5}]}`))
	})

	result, err := client.FindBillsByPatientID(context.Background(), "token", "42")
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestFindBillsByPatientID_ServerError(t *testing.T) {
	client := newTestBillClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FindBillsByPatientID(context.Background(), "token", "42")
	assert.True(t, errors.Is(err, exceptions.ErrKindNetwork))
}
