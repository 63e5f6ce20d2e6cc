//go:build unit

package quote_test

import (
	"testing"

	"soundlight-quotes/internal/domain/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "day preset", input: quote.DaySchedule},
		{name: "night preset wraps past midnight", input: quote.NightSchedule},
		{name: "earliest allowed start", input: "13:00 - 18:00"},
		{name: "ends exactly at 05:00", input: "21:00 - 05:00"},
		{name: "starts before 13:00", input: "12:00 - 17:00", errIs: quote.ErrScheduleStarts},
		{name: "wraps past 05:00", input: "22:00 - 06:00", errIs: quote.ErrScheduleEnds},
		{name: "too short", input: "15:00 - 18:00", errIs: quote.ErrScheduleTooShort},
		{name: "too long", input: "14:00 - 23:00", errIs: quote.ErrScheduleTooLong},
		{name: "missing separator", input: "15:00 20:00", errIs: quote.ErrScheduleFormat},
		{name: "not a time", input: "soon - later", errIs: quote.ErrScheduleFormat},
		{name: "empty", input: "", errIs: quote.ErrScheduleFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := quote.ValidateSchedule(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeRange(t *testing.T) {
	t.Run("same-day duration", func(t *testing.T) {
		tr, err := quote.ParseTimeRange("15:00 - 20:00")
		require.NoError(t, err)
		assert.Equal(t, 300, tr.DurationMinutes())
		assert.False(t, tr.Wraps())
	})

	t.Run("wrapped duration crosses midnight", func(t *testing.T) {
		tr, err := quote.ParseTimeRange("22:00 - 05:00")
		require.NoError(t, err)
		assert.Equal(t, 420, tr.DurationMinutes())
		assert.True(t, tr.Wraps())
	})

	t.Run("string round-trips the picker format", func(t *testing.T) {
		tr, err := quote.ParseTimeRange("22:30 - 04:15")
		require.NoError(t, err)
		assert.Equal(t, "22:30 - 04:15", tr.String())
	})
}
