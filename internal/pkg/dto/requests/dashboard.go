package requests

type SelectTab struct {
	Tab string `json:"tab" validate:"required,oneof=reservations records bills"`
}

type AddTag struct {
	Label string `json:"label" validate:"max=64"`
}

type CancelReservation struct {
	ReservationID string `validate:"required,notblank"`
}

// ChangeReservationStatus is the body of the backend status-change call.
type ChangeReservationStatus struct {
	AID    string                  `json:"aid"`
	Action ReservationStatusAction `json:"action"`
}

type ReservationStatusAction struct {
	Status  string `json:"status"`
	EndTime string `json:"end_time,omitempty"`
}
