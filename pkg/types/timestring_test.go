package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"09:30", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:30", true},
		{"09:60", true},
		{"", true},
		{"noon", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, ts.String())
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(TimeString("09:00")))
	assert.False(t, a.Equal(b))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", shifted.String())

	shifted, err = ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, "08:00", shifted.String())

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    string
		wantErr bool
	}{
		{"string", "09:30", "09:30", false},
		{"bytes", []byte("17:00"), "17:00", false},
		{"time.Time from pq", time.Date(0, 1, 1, 14, 45, 0, 0, time.UTC), "14:45", false},
		{"nil resets", nil, "", false},
		{"garbage", "not-a-time", "", true},
		{"unsupported type", 42, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
