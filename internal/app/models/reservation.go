package models

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	if next == ReservationStatusPending {
		return false
	}
	return true
}

// Reservation timestamps use constvars.DateTimeLayout.
type Reservation struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patient_id"`
	DoctorID  string            `json:"doctor_id,omitempty"`
	Status    ReservationStatus `json:"status"`
	StartTime string            `json:"start_time,omitempty"`
	EndTime   string            `json:"end_time,omitempty"`
}

type MedicalRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	DoctorID     string `json:"doctor_id,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Prescription string `json:"prescription,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type Bill struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patient_id"`
	ReservationID string  `json:"reservation_id,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type TransitionResult struct {
	ReservationID string            `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	EndTime       string            `json:"end_time"`
	Message       string            `json:"message,omitempty"`
}
