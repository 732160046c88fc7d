package cancel_mission

// CancelMissionRequest is the HTTP request model.
type CancelMissionRequest struct {
	Reason string `json:"reason,omitempty"`
}
