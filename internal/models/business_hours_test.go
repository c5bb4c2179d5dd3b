package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyScheduleValueNil(t *testing.T) {
	var s WeeklySchedule

	v, err := s.Value()

	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWeeklyScheduleScan(t *testing.T) {
	var s WeeklySchedule

	require.NoError(t, s.Scan([]byte(`{"monday":{"open":"08:00","close":"12:00","closed":false}}`)))
	assert.Equal(t, DayHours{Open: "08:00", Close: "12:00"}, s["monday"])

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	require.NoError(t, s.Scan("null"))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
}
