package domain

import "time"

// All monetary amounts are integer minor currency units (cents).

// CommissionPolicy derives the provider's share from the client-facing
// total. Injected so the marketplace fee can change without touching
// the scheduling core.
type CommissionPolicy interface {
	AnnouncerEarnings(amount int64) int64
}

// PercentCommission keeps a fixed share of every mission, expressed in
// basis points (e.g. 2000 = 20%). Earnings use floor division, so the
// platform never pays out more than the amount collected.
type PercentCommission struct {
	RateBasisPoints int64
}

// AnnouncerEarnings implements CommissionPolicy.
func (p PercentCommission) AnnouncerEarnings(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	commission := amount * p.RateBasisPoints / 10000
	return amount - commission
}

// RefundPolicy decides how much of a cancelled mission's amount is
// refunded. The computation itself belongs to the payment collaborator;
// the scheduling core only produces the figure for the refund hook.
type RefundPolicy interface {
	RefundAmount(m *Mission, now time.Time) int64
}

// NoticeRefundPolicy refunds the full amount when the cancellation
// happens at least FullRefundNotice before the mission starts, and half
// of it otherwise.
type NoticeRefundPolicy struct {
	FullRefundNotice time.Duration
}

// RefundAmount implements RefundPolicy.
func (p NoticeRefundPolicy) RefundAmount(m *Mission, now time.Time) int64 {
	start := m.StartDate
	if m.StartTime != nil {
		if minutes, err := m.StartTime.Minutes(); err == nil {
			start = start.Add(time.Duration(minutes) * time.Minute)
		}
	}

	if start.Sub(now) >= p.FullRefundNotice {
		return m.Amount
	}
	return m.Amount / 2
}
