package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"14:30", 870},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMinutes_Invalid(t *testing.T) {
	invalid := []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "12:300"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMinutes(input)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	ts, err := FromMinutes(540)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	ts, err = FromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	ts, err = FromMinutes(1439)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)
}

func TestFromMinutes_OutOfRange(t *testing.T) {
	_, err := FromMinutes(-1)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)

	_, err = FromMinutes(1440)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

// Обратимость: FromMinutes(Minutes(t)) == t для всего диапазона [0, 1440)
func TestRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		ts, err := FromMinutes(m)
		require.NoError(t, err)

		back, err := ts.Minutes()
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	result, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	// Выход за пределы суток - ошибка
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}
