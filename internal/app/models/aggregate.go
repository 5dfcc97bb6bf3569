package models

// ReservationAggregate is a complete snapshot: all three collections are
// non-nil once it has been built by the loader.
type ReservationAggregate struct {
	Reservations []Reservation   `json:"reservations"`
	Records      []MedicalRecord `json:"records"`
	Bills        []Bill          `json:"bills"`
}

func (a *ReservationAggregate) IsComplete() bool {
	return a != nil && a.Reservations != nil && a.Records != nil && a.Bills != nil
}
