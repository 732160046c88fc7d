package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentCommissionAnnouncerEarnings(t *testing.T) {
	policy := PercentCommission{RateBasisPoints: 2000} // 20%

	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{"round amount", 10000, 8000},
		{"floor division favors the provider", 99, 80},
		{"zero", 0, 0},
		{"negative clamps to zero", -500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.AnnouncerEarnings(tt.amount))
		})
	}
}

func TestNoticeRefundPolicyRefundAmount(t *testing.T) {
	policy := NoticeRefundPolicy{FullRefundNotice: 24 * time.Hour}
	start := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	mission := &Mission{StartDate: start, Amount: 10000}

	t.Run("enough notice refunds in full", func(t *testing.T) {
		now := start.Add(-48 * time.Hour)
		assert.Equal(t, int64(10000), policy.RefundAmount(mission, now))
	})

	t.Run("short notice refunds half", func(t *testing.T) {
		now := start.Add(-2 * time.Hour)
		assert.Equal(t, int64(5000), policy.RefundAmount(mission, now))
	})

	t.Run("start time shifts the cutoff", func(t *testing.T) {
		timed := &Mission{StartDate: start, StartTime: timePtr(t, "12:00"), Amount: 10000}
		// 26 hours before midnight but 38 hours before the actual start.
		now := start.Add(-26 * time.Hour)
		assert.Equal(t, int64(10000), policy.RefundAmount(timed, now))
	})
}
