package dates_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/recipes_go/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	d := dates.NewDate(2012, time.December, 21)

	assert.Equal(t, 2012, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 21, d.Day())
	assert.Equal(t, time.Friday, d.Weekday())
}

func TestParseISO(t *testing.T) {
	d, err := dates.ParseISO("2012-12-21")
	require.NoError(t, err)
	assert.Equal(t, dates.NewDate(2012, time.December, 21), d)

	_, err = dates.ParseISO("21/12/2012")
	assert.Error(t, err)
}

func TestBetween(t *testing.T) {
	start := time.Date(2012, time.December, 21, 9, 0, 0, 0, time.UTC)
	span := dates.Between(start, start.Add(2*time.Hour))

	assert.Equal(t, 2*time.Hour, span.Duration())
	assert.True(t, span.Contains(start.Add(time.Hour)))
	assert.False(t, span.Contains(start.Add(3*time.Hour)))
}

func TestParsePeriod(t *testing.T) {
	p, err := dates.ParsePeriod("P1Y2M")
	require.NoError(t, err)
	assert.Equal(t, "P1Y2M", p.String())

	_, err = dates.ParsePeriod("one month")
	assert.Error(t, err)
}
