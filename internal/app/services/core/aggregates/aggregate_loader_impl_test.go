package aggregates

import (
	"context"
	"errors"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/dto/responses"
	"reservation-center/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReservationBackendClient struct {
	mock.Mock
}

func (m *MockReservationBackendClient) FindReservationsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Reservation, error) {
	args := m.Called(ctx, accessToken, patientID)
	reservations, _ := args.Get(0).([]models.Reservation)
	return reservations, args.Error(1)
}

func (m *MockReservationBackendClient) ChangeReservationStatus(ctx context.Context, accessToken string, request *requests.ChangeReservationStatus) (*responses.ChangeReservationStatus, error) {
	args := m.Called(ctx, accessToken, request)
	result, _ := args.Get(0).(*responses.ChangeReservationStatus)
	return result, args.Error(1)
}

type MockRecordBackendClient struct {
	mock.Mock
}

func (m *MockRecordBackendClient) FindRecordsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, accessToken, patientID)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Error(1)
}

type MockBillBackendClient struct {
	mock.Mock
}

func (m *MockBillBackendClient) FindBillsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Bill, error) {
	args := m.Called(ctx, accessToken, patientID)
	bills, _ := args.Get(0).([]models.Bill)
	return bills, args.Error(1)
}

var testSession = &models.Session{SessionID: "s-1", AccessToken: "token-42"}

func newMocks() (*MockReservationBackendClient, *MockRecordBackendClient, *MockBillBackendClient) {
	return new(MockReservationBackendClient), new(MockRecordBackendClient), new(MockBillBackendClient)
}

func TestAggregateLoader_Load(t *testing.T) {
	t.Run("All Collections", func(t *testing.T) {
		reservations, records, bills := newMocks()
		reservations.On("FindReservationsByPatientID", mock.Anything, "token-42", "42").Return([]models.Reservation{{ID: "7", Status: models.ReservationStatusPending}}, nil)
		records.On("FindRecordsByPatientID", mock.Anything, "token-42", "42").Return([]models.MedicalRecord{{ID: "r1"}}, nil)
		bills.On("FindBillsByPatientID", mock.Anything, "token-42", "42").Return([]models.Bill{{ID: "b1"}, {ID: "b2"}}, nil)

		aggregate, err := NewAggregateLoader(reservations, records, bills, zap.NewNop()).Load(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.True(t, aggregate.IsComplete())
		assert.Len(t, aggregate.Reservations, 1)
		assert.Len(t, aggregate.Records, 1)
		assert.Len(t, aggregate.Bills, 2)
	})

	t.Run("Empty Collections Are Non Nil", func(t *testing.T) {
		reservations, records, bills := newMocks()
		reservations.On("FindReservationsByPatientID", mock.Anything, "token-42", "42").Return(nil, nil)
		records.On("FindRecordsByPatientID", mock.Anything, "token-42", "42").Return([]models.MedicalRecord{}, nil)
		bills.On("FindBillsByPatientID", mock.Anything, "token-42", "42").Return(nil, nil)

		aggregate, err := NewAggregateLoader(reservations, records, bills, zap.NewNop()).Load(context.Background(), testSession, "42")
		require.NoError(t, err)
		assert.True(t, aggregate.IsComplete())
		assert.Empty(t, aggregate.Reservations)
	})

	t.Run("Records Failure", func(t *testing.T) {
		reservations, records, bills := newMocks()
		networkErr := exceptions.ErrBackendSendRequest(errors.New("connection refused"), "records")
		reservations.On("FindReservationsByPatientID", mock.Anything, "token-42", "42").Return([]models.Reservation{}, nil)
		records.On("FindRecordsByPatientID", mock.Anything, "token-42", "42").Return(nil, networkErr)
		bills.On("FindBillsByPatientID", mock.Anything, "token-42", "42").Return([]models.Bill{}, nil)

		aggregate, err := NewAggregateLoader(reservations, records, bills, zap.NewNop()).Load(context.Background(), testSession, "42")
		assert.Nil(t, aggregate)
		require.Error(t, err)
		assert.True(t, errors.Is(err, exceptions.ErrKindPartialFailure))
		assert.True(t, errors.Is(err, exceptions.ErrKindNetwork), "the cause stays reachable")
		assert.Contains(t, err.Error(), "records")
	})

	t.Run("Fetches Run Concurrently", func(t *testing.T) {
		reservations, records, bills := newMocks()
		release := make(chan struct{})
		started := make(chan struct{}, 3)
		wait := func(mock.Arguments) {
			started <- struct{}{}
			<-release
		}
		reservations.On("FindReservationsByPatientID", mock.Anything, "token-42", "42").Run(wait).Return([]models.Reservation{}, nil)
		records.On("FindRecordsByPatientID", mock.Anything, "token-42", "42").Run(wait).Return([]models.MedicalRecord{}, nil)
		bills.On("FindBillsByPatientID", mock.Anything, "token-42", "42").Run(wait).Return([]models.Bill{}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := NewAggregateLoader(reservations, records, bills, zap.NewNop()).Load(context.Background(), testSession, "42")
			done <- err
		}()

		for i := 0; i < 3; i++ {
			<-started
		}
		close(release)
		assert.NoError(t, <-done)
	})
}
