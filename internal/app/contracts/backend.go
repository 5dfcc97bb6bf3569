package contracts

import (
	"context"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/dto/responses"
)

type UserBackendClient interface {
	FindCurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error)
}

type ReservationBackendClient interface {
	FindReservationsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Reservation, error)
	// ChangeReservationStatus submits exactly once. A 2xx answer with success=false
	// is returned as a result, not as an error.
	ChangeReservationStatus(ctx context.Context, accessToken string, request *requests.ChangeReservationStatus) (*responses.ChangeReservationStatus, error)
}

type RecordBackendClient interface {
	FindRecordsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.MedicalRecord, error)
}

type BillBackendClient interface {
	FindBillsByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Bill, error)
}
