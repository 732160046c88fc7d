package payments

// PaymentStatus values reported by the payment service.
const (
	StatusPending    = "pending"
	StatusAuthorized = "authorized"
	StatusCaptured   = "captured"
	StatusRefunded   = "refunded"
)

// Payment is the payment state of a mission.
type Payment struct {
	ID        int64  `json:"id"`
	MissionID int64  `json:"mission_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// RefundRequest asks the payment service to refund part of a payment.
type RefundRequest struct {
	MissionID int64  `json:"mission_id"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

// ErrorResponse is the error envelope of the payment service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
