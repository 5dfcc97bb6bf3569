package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// BackendEnvelope is the shape every backend read answers with.
type BackendEnvelope[T any] struct {
	Success      bool   `json:"success"`
	Data         T      `json:"data"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// ChangeReservationStatus is the backend answer to a status change.
type ChangeReservationStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
