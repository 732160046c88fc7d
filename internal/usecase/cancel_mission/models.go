package cancel_mission

// Request cancels a mission on behalf of its provider or client.
type Request struct {
	MissionID int64
	UserID    int64
	Reason    string
}

// Response reports the cancellation outcome.
type Response struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	RefundAmount int64  `json:"refundAmount"`
}
