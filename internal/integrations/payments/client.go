package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the payment service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a payment service client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMissionPayment fetches the payment attached to a mission.
func (c *Client) GetMissionPayment(ctx context.Context, missionID int64) (*Payment, error) {
	url := fmt.Sprintf("%s/internal/payments/missions/%d", c.baseURL, missionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payment, nil
}

// IsPaymentPending reports whether the mission's payment still awaits
// capture. When the payment service is unreachable it returns
// ErrServiceDegraded so the caller can choose the conservative path.
func (c *Client) IsPaymentPending(ctx context.Context, missionID int64) (bool, error) {
	payment, err := c.GetMissionPayment(ctx, missionID)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			// No payment record means the client has not paid yet.
			return true, nil
		}
		c.log.Error("Payment service unavailable for mission_id=%d: %v", missionID, err)
		return false, fmt.Errorf("%w: mission_id=%d, error=%v", ErrServiceDegraded, missionID, err)
	}

	return payment.Status == StatusPending, nil
}

// RequestRefund asks the payment service to refund amount to the client.
func (c *Client) RequestRefund(ctx context.Context, refund RefundRequest) error {
	url := fmt.Sprintf("%s/internal/payments/refunds", c.baseURL)

	body, err := json.Marshal(refund)
	if err != nil {
		return fmt.Errorf("%w: failed to encode refund request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return ErrPaymentNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// RequestRefundAsync fires the refund in the background. Refunds are
// retried by the payment service itself, so a failed request is only
// logged here.
func (c *Client) RequestRefundAsync(refund RefundRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		if err := c.RequestRefund(ctx, refund); err != nil {
			c.log.Error("Failed to request refund for mission_id=%d: %v", refund.MissionID, err)
			return
		}
		c.log.Info("Requested refund of %d for mission_id=%d", refund.Amount, refund.MissionID)
	}()
}
