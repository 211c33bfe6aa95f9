package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	assert.True(t, ValidateDate("2024-02-29"))
	assert.True(t, ValidateDate("1999-12-31"))
	assert.False(t, ValidateDate("2024-13-01"))
	assert.False(t, ValidateDate("2024-00-10"))
	assert.False(t, ValidateDate("24-02-01"))
	assert.False(t, ValidateDate("2024/02/01"))
	assert.False(t, ValidateDate(""))
}

func TestValidateTime(t *testing.T) {
	assert.True(t, ValidateTime("00:00"))
	assert.True(t, ValidateTime("09:30"))
	assert.True(t, ValidateTime("23:59"))
	assert.False(t, ValidateTime("24:00"))
	assert.False(t, ValidateTime("9:30"))
	assert.False(t, ValidateTime("09:60"))
	assert.False(t, ValidateTime(""))
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)

	first, last = MonthRange(2023, time.February)
	assert.Equal(t, "2023-02-01", first)
	assert.Equal(t, "2023-02-28", last)

	first, last = MonthRange(2024, time.December)
	assert.Equal(t, "2024-12-01", first)
	assert.Equal(t, "2024-12-31", last)
}
