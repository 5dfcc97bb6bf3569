// Package mockbackend is an in-memory stand-in for the reservation backend,
// used for local development and end-to-end tests.
package mockbackend

import (
	"errors"
	"fmt"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"sync"
	"time"
)

var ErrReservationNotFound = errors.New("reservation not found")

// RejectedError is a status change the backend refuses. Reason is shown to the user.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

type Store struct {
	mu           sync.RWMutex
	users        map[string]models.UserProfile
	reservations map[string]*models.Reservation
	order        []string
	records      map[string][]models.MedicalRecord
	bills        map[string][]models.Bill
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]models.UserProfile),
		reservations: make(map[string]*models.Reservation),
		records:      make(map[string][]models.MedicalRecord),
		bills:        make(map[string][]models.Bill),
	}
}

// SeedToken is the access token of the seeded patient.
const SeedToken = "mock-token-42"

// NewSeededStore returns a store holding patient 42 with one cancellable and
// one completed reservation.
func NewSeededStore(now time.Time) *Store {
	store := NewStore()
	store.AddUser(SeedToken, models.UserProfile{
		ID:        "42",
		Name:      "Lin Yue",
		Avatar:    "avatars/42.png",
		Signature: "Take it one day at a time",
		Geographic: models.Geographic{
			Province: "Zhejiang",
			City:     "Hangzhou",
			Address:  "12 Wensan Road",
		},
		Tags: []models.Tag{
			{Key: "0", Label: "regular checkup"},
			{Key: "1", Label: "penicillin allergy"},
		},
	})
	store.AddReservation(models.Reservation{
		ID:        "7",
		PatientID: "42",
		DoctorID:  "d-3",
		Status:    models.ReservationStatusPending,
		StartTime: now.Add(-time.Hour).Format(constvars.DateTimeLayout),
	})
	store.AddReservation(models.Reservation{
		ID:        "5",
		PatientID: "42",
		DoctorID:  "d-1",
		Status:    models.ReservationStatusCompleted,
		StartTime: now.AddDate(0, 0, -30).Format(constvars.DateTimeLayout),
		EndTime:   now.AddDate(0, 0, -30).Add(30 * time.Minute).Format(constvars.DateTimeLayout),
	})
	store.AddRecord(models.MedicalRecord{
		ID:           "r-1",
		PatientID:    "42",
		DoctorID:     "d-1",
		Diagnosis:    "seasonal influenza",
		Prescription: "oseltamivir 75mg twice daily",
		CreatedAt:    now.AddDate(0, 0, -30).Format(constvars.DateTimeLayout),
	})
	store.AddBill(models.Bill{
		ID:            "b-1",
		PatientID:     "42",
		ReservationID: "5",
		Amount:        86.5,
		Status:        "paid",
		CreatedAt:     now.AddDate(0, 0, -30).Format(constvars.DateTimeLayout),
	})
	return store
}

func (s *Store) AddUser(accessToken string, profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[accessToken] = profile
}

func (s *Store) AddReservation(reservation models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[reservation.ID]; !ok {
		s.order = append(s.order, reservation.ID)
	}
	s.reservations[reservation.ID] = &reservation
}

func (s *Store) AddRecord(record models.MedicalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.PatientID] = append(s.records[record.PatientID], record)
}

func (s *Store) AddBill(bill models.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[bill.PatientID] = append(s.bills[bill.PatientID], bill)
}

func (s *Store) FindUserByToken(accessToken string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.users[accessToken]
	if !ok {
		return models.UserProfile{}, false
	}
	return *profile.Clone(), true
}

func (s *Store) FindReservation(reservationID string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservation, ok := s.reservations[reservationID]
	if !ok {
		return models.Reservation{}, false
	}
	return *reservation, true
}

// ListReservations returns the patient's reservations in insertion order.
func (s *Store) ListReservations(patientID string) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := []models.Reservation{}
	for _, id := range s.order {
		if reservation := s.reservations[id]; reservation.PatientID == patientID {
			reservations = append(reservations, *reservation)
		}
	}
	return reservations
}

func (s *Store) ListRecords(patientID string) []models.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MedicalRecord{}, s.records[patientID]...)
}

func (s *Store) ListBills(patientID string) []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bill{}, s.bills[patientID]...)
}

// ChangeStatus applies a status change owned by patientID. Terminal states are
// final and endTime may not precede the reservation's start time.
func (s *Store) ChangeStatus(patientID, reservationID string, status models.ReservationStatus, endTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[reservationID]
	if !ok || reservation.PatientID != patientID {
		return ErrReservationNotFound
	}

	if !reservation.Status.CanTransitionTo(status) {
		return &RejectedError{Reason: fmt.Sprintf(constvars.ErrDevMockBackendInvalidTransition, reservation.Status, status)}
	}

	if endTime != "" {
		end, err := time.Parse(constvars.DateTimeLayout, endTime)
		if err != nil {
			return &RejectedError{Reason: fmt.Sprintf("end_time %q is not in %s format", endTime, constvars.DateTimeLayout)}
		}
		if reservation.StartTime != "" {
			start, err := time.Parse(constvars.DateTimeLayout, reservation.StartTime)
			if err == nil && end.Before(start) {
				return &RejectedError{Reason: "end_time cannot be earlier than start_time"}
			}
		}
	}

	reservation.Status = status
	if endTime != "" {
		reservation.EndTime = endTime
	}
	return nil
}
