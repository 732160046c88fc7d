package accept_mission

// Request accepts a pending mission on behalf of its provider.
type Request struct {
	MissionID  int64
	ProviderID int64
}

// Response reports the status the mission landed in: upcoming when the
// payment is settled, pending_confirmation while it is not.
type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
