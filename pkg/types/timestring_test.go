package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "08:00", "14:30", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	// Неканонические формы без ведущих нулей обязаны отклоняться:
	// значения сравниваются как строки, "9:00" не равно "09:00"
	invalid := []string{"", "9:00", "09:5", "8:00", "24:00", "14:60", "14.30", "abcde"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("14:30").Minutes()
	assert.NoError(t, err)
	assert.Equal(t, 14*60+30, m)

	m, err = TimeString("00:00").Minutes()
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("08:00").AddMinutes(30)
	assert.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)

	ts, err = TimeString("17:30").AddMinutes(30)
	assert.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), ts)

	// Выход за пределы суток
	_, err = TimeString("23:59").AddMinutes(1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:30"))
}
