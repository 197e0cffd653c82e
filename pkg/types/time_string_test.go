package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		wantErr bool
	}{
		{input: "09:00"},
		{input: "00:00"},
		{input: "23:59"},
		{input: "24:00", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "0900", wantErr: true},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, ts.String())
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	ts := TimeString("14:35")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+35, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), result)

	result, err = ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), result)

	// переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("15:00").IsAfter(TimeString("14:59")))
	assert.False(t, TimeString("15:00").IsAfter(TimeString("15:00")))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:27")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
