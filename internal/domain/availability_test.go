package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

func window(day int, start, end string) *AvailabilityWindow {
	return &AvailabilityWindow{
		ProviderID: 1,
		DayOfWeek:  day,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func TestAvailabilityWindowOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a        *AvailabilityWindow
		b        *AvailabilityWindow
		expected bool
	}{
		{
			name: "identical windows overlap",
			a:    window(1, "09:00", "12:00"),
			b:    window(1, "09:00", "12:00"), expected: true,
		},
		{
			name: "partial overlap",
			a:    window(1, "09:00", "12:00"),
			b:    window(1, "11:00", "14:00"), expected: true,
		},
		{
			name: "contained window overlaps",
			a:    window(1, "09:00", "18:00"),
			b:    window(1, "10:00", "11:00"), expected: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    window(1, "09:00", "12:00"),
			b:    window(1, "12:00", "15:00"), expected: false,
		},
		{
			name: "disjoint windows",
			a:    window(1, "09:00", "10:00"),
			b:    window(1, "14:00", "16:00"), expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a))
		})
	}
}

func TestAvailabilityWindowCovers(t *testing.T) {
	w := window(1, "09:00", "17:00")

	assert.True(t, w.Covers(types.TimeString("09:00"), types.TimeString("17:00")))
	assert.True(t, w.Covers(types.TimeString("10:00"), types.TimeString("11:00")))
	assert.False(t, w.Covers(types.TimeString("08:59"), types.TimeString("10:00")))
	assert.False(t, w.Covers(types.TimeString("16:00"), types.TimeString("17:01")))
}

func TestWindowCovering(t *testing.T) {
	windows := []*AvailabilityWindow{
		window(1, "09:00", "12:00"),
		window(1, "14:00", "18:00"),
		window(2, "10:00", "16:00"),
	}

	// попадает во второе окно понедельника
	found := WindowCovering(windows, 1, types.TimeString("14:00"), types.TimeString("15:00"))
	assert.NotNil(t, found)

	// между окнами
	assert.Nil(t, WindowCovering(windows, 1, types.TimeString("12:00"), types.TimeString("14:00")))

	// день без окон
	assert.Nil(t, WindowCovering(windows, 3, types.TimeString("10:00"), types.TimeString("11:00")))

	// частично выходит за окно
	assert.Nil(t, WindowCovering(windows, 1, types.TimeString("11:00"), types.TimeString("13:00")))
}
