package routes

const (
	// Health
	Health = "/health"

	// Panel / scheduling
	Panel = "/api/v1/panel"

	// Holiday calendar
	HolidaysYear  = "/api/v1/holidays/{year}"
	HolidaysMonth = "/api/v1/holidays/{year}/{month}"
	RoundsAdjust  = "/api/v1/rounds/adjust"

	// Round entries
	Rounds     = "/api/v1/rounds"
	RoundsByID = "/api/v1/rounds/{id}"

	// Daily surgery records
	Surgery     = "/api/v1/surgery"
	SurgeryByID = "/api/v1/surgery/{id}"

	// Service catalog
	Services      = "/api/v1/services"
	ServiceActive = "/api/v1/services/{id}/active"
)
