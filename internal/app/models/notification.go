package models

import "time"

type NotificationLevel string

const (
	NotificationLevelSuccess NotificationLevel = "success"
	NotificationLevelFailure NotificationLevel = "failure"
	NotificationLevelError   NotificationLevel = "error"
)

type Notification struct {
	ID            string            `json:"id"`
	SessionID     string            `json:"session_id,omitempty"`
	Level         NotificationLevel `json:"level"`
	Message       string            `json:"message"`
	ReservationID string            `json:"reservation_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
