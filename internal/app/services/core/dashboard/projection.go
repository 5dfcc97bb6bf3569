package dashboard

import "reservation-center/internal/app/models"

type projector func(aggregate *models.ReservationAggregate) interface{}

// projectors maps each tab to the collection it shows. Every tab has an entry.
var projectors = map[models.Tab]projector{
	models.TabReservations: func(aggregate *models.ReservationAggregate) interface{} {
		return append([]models.Reservation{}, aggregate.Reservations...)
	},
	models.TabRecords: func(aggregate *models.ReservationAggregate) interface{} {
		return append([]models.MedicalRecord{}, aggregate.Records...)
	},
	models.TabBills: func(aggregate *models.ReservationAggregate) interface{} {
		return append([]models.Bill{}, aggregate.Bills...)
	},
}

func project(tab models.Tab, aggregate *models.ReservationAggregate) interface{} {
	if !aggregate.IsComplete() {
		return nil
	}
	projectFn, ok := projectors[tab]
	if !ok {
		return nil
	}
	return projectFn(aggregate)
}
