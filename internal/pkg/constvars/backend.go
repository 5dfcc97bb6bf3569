package constvars

const (
	BackendPathCurrentUser        = "/api/currentUser"
	BackendPathReservations       = "/api/reservations"
	BackendPathRecords            = "/api/records"
	BackendPathBills              = "/api/bills"
	BackendPathReservationStatus  = "/api/reservations/status"
	BackendQueryParamPatientID    = "patient_id"
	BackendResponseSuccessPath    = "success"
	BackendResponseMessagePath    = "message"
	BackendResponseErrMessagePath = "errorMessage"
)

const (
	ResourceCurrentUser       = "current user"
	ResourceReservations      = "reservations"
	ResourceRecords           = "records"
	ResourceBills             = "bills"
	ResourceReservationStatus = "reservation status"
)
