package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetDashboardSuccessMessage       = "get dashboard successfully"
	SelectTabSuccessMessage          = "tab selected successfully"
	AddTagSuccessMessage             = "tag added successfully"
	RefreshDashboardSuccessMessage   = "dashboard refreshed successfully"
	CancelReservationRequestMessage  = "reservation cancellation processed"
	LogoutSuccessMessage             = "logged out successfully"
	HealthCheckSuccessMessage        = "ok"
	NotificationReservationCancelled = "reservation cancelled successfully"
)
