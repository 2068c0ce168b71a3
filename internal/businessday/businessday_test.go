package businessday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	valid := []string{"2024-01-15", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		d, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, d.String())
	}

	invalid := []string{"", "2024-1-15", "15-01-2024", "2024/01/15", "2024-01-15T00:00:00Z", " 2024-01-15", "2023-02-29", "2024-13-01", "abcd-ef-gh"}
	for _, s := range invalid {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestWindowFollowsFixedOffset(t *testing.T) {
	d, err := Parse("2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 14, 18, 30, 0, 0, time.UTC), d.Start())
	assert.Equal(t, time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC), d.End())

	assert.True(t, d.Contains(time.Date(2024, 1, 14, 18, 30, 0, 0, time.UTC)))
	assert.True(t, d.Contains(time.Date(2024, 1, 15, 18, 29, 59, 0, time.UTC)))
	assert.False(t, d.Contains(time.Date(2024, 1, 14, 18, 29, 59, 0, time.UTC)))
	assert.False(t, d.Contains(time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)))
}

func TestDateOfIgnoresInstantLocation(t *testing.T) {
	late := time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-16", DateOf(late))

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	assert.Equal(t, "2024-01-16", DateOf(late.In(ny)))
	assert.Equal(t, "2024-01-15", DateOf(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
}

func TestDateOfMatchesContains(t *testing.T) {
	d, err := Parse("2024-06-01")
	require.NoError(t, err)
	for m := -600; m <= 2000; m += 37 {
		ts := d.Start().Add(time.Duration(m) * time.Minute)
		assert.Equal(t, d.Contains(ts), DateOf(ts) == d.String(), ts.String())
	}
}
