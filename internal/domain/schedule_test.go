package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestComputeSchedule_ReleaseOnFriday(t *testing.T) {
	s := domain.ComputeSchedule(date(t, "2025-01-10"))

	assert.Equal(t, date(t, "2024-12-09"), s.Drafting.Start)
	assert.Equal(t, date(t, "2024-12-11"), s.Drafting.End)
	assert.Equal(t, date(t, "2024-12-16"), s.Prototyping.Start)
	assert.Equal(t, date(t, "2024-12-20"), s.Prototyping.End)
	assert.Equal(t, date(t, "2024-12-30"), s.Development.Start)
	assert.Equal(t, date(t, "2025-01-03"), s.Development.End)
	assert.Equal(t, date(t, "2025-01-06"), s.Testing.Start)
	assert.Equal(t, date(t, "2025-01-10"), s.Testing.End)
	assert.Equal(t, time.Monday, s.Development.Start.Weekday())
	assert.Equal(t, time.Friday, s.Development.End.Weekday())
}

func TestComputeSchedule_GapWeekBeforeDevelopment(t *testing.T) {
	s := domain.ComputeSchedule(date(t, "2025-01-10"))
	windows := map[string]domain.DateWindow{
		"drafting":    s.Drafting,
		"prototyping": s.Prototyping,
		"development": s.Development,
		"testing":     s.Testing,
	}

	// 2024-12-23..27 sits between prototyping and development.
	gap := date(t, "2024-12-23")
	for i := 0; i < 5; i++ {
		day := gap.AddDate(0, 0, i)
		for name, w := range windows {
			inside := !day.Before(w.Start) && !day.After(w.End)
			assert.False(t, inside, "%s falls in %s window", day.Format(domain.DateLayout), name)
		}
	}
}

func TestComputeSchedule_Properties(t *testing.T) {
	start := date(t, "2024-01-01")
	for i := 0; i < 400; i++ {
		d := start.AddDate(0, 0, i)
		s := domain.ComputeSchedule(d)

		require.Equal(t, s, domain.ComputeSchedule(d), "deterministic for %s", d)

		assert.Equal(t, 2*24*time.Hour, s.Drafting.End.Sub(s.Drafting.Start))
		assert.Equal(t, 4*24*time.Hour, s.Prototyping.End.Sub(s.Prototyping.Start))
		assert.Equal(t, d, s.Testing.End)

		assert.Equal(t, time.Monday, s.Drafting.Start.Weekday())
		assert.Equal(t, time.Wednesday, s.Drafting.End.Weekday())
		assert.Equal(t, time.Monday, s.Testing.Start.Weekday())
		assert.False(t, s.Testing.Start.After(s.Testing.End))

		ordered := []time.Time{
			s.Drafting.End, s.Prototyping.Start, s.Prototyping.End,
			s.Development.Start, s.Development.End, s.Testing.Start,
		}
		for j := 1; j < len(ordered); j++ {
			assert.True(t, ordered[j-1].Before(ordered[j]), "windows overlap for %s", d.Format(domain.DateLayout))
		}
	}
}

func TestComputeSchedule_ReleaseOnMonday(t *testing.T) {
	s := domain.ComputeSchedule(date(t, "2025-03-03"))

	assert.Equal(t, s.Testing.Start, s.Testing.End)
	assert.Equal(t, 1, s.Testing.Days())
	assert.Equal(t, 3, s.Drafting.Days())
	assert.Equal(t, 5, s.Prototyping.Days())
}

func TestComputeSchedule_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	withClock := time.Date(2025, 1, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, domain.ComputeSchedule(date(t, "2025-01-10")), domain.ComputeSchedule(withClock))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{name: "valid", input: "2025-01-10"},
		{name: "leap day", input: "2024-02-29"},
		{name: "invalid - empty", input: "", wantError: true},
		{name: "invalid - not a date", input: "tomorrow", wantError: true},
		{name: "invalid - day out of range", input: "2025-02-30", wantError: true},
		{name: "invalid - wrong layout", input: "10.01.2025", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseDate(tt.input)
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
