package responses

import "reservation-center/internal/app/models"

type CancelReservation struct {
	Notification models.Notification  `json:"notification"`
	Dashboard    models.DashboardView `json:"dashboard"`
}

type AddTag struct {
	LocalTags []models.LocalTag `json:"local_tags"`
	Tags      []models.Tag      `json:"tags"`
}
