package notifier

// Event names understood by the notification service.
const (
	EventMissionRequested = "mission.requested"
	EventMissionAccepted  = "mission.accepted"
	EventMissionConfirmed = "mission.confirmed"
	EventMissionRefused   = "mission.refused"
	EventMissionCancelled = "mission.cancelled"
	EventMissionStarted   = "mission.started"
	EventMissionCompleted = "mission.completed"
)

// MissionEvent is the payload sent for every mission lifecycle change.
type MissionEvent struct {
	Event      string `json:"event"`
	MissionID  int64  `json:"mission_id"`
	ProviderID int64  `json:"provider_id"`
	ClientID   int64  `json:"client_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

// ErrorResponse is the error envelope of the notification service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
