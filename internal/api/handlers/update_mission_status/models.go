package update_mission_status

// UpdateStatusRequest is the optional HTTP request body. Reason applies
// to refuse, notes to complete.
type UpdateStatusRequest struct {
	Reason *string `json:"reason,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
