package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func defaultCutoff() Cutoff {
	return Cutoff{Month: time.July, Day: 1}
}

func TestResolverResolveCutoffBoundaries(t *testing.T) {
	resolver := NewResolver(defaultCutoff(), nil)

	tests := []struct {
		name string
		at   time.Time
		want Period
	}{
		{"start of year", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), Period{"2026", SemesterFirst}},
		{"day before cutoff", time.Date(2026, time.June, 30, 23, 59, 59, 0, time.UTC), Period{"2026", SemesterFirst}},
		{"cutoff day", time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), Period{"2026", SemesterSecond}},
		{"after cutoff", time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC), Period{"2026", SemesterSecond}},
		{"end of year", time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC), Period{"2026", SemesterSecond}},
		{"next calendar year resets", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), Period{"2027", SemesterFirst}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.at))
		})
	}
}

func TestResolverResolveMidYearCutoff(t *testing.T) {
	resolver := NewResolver(Cutoff{Month: time.August, Day: 15}, nil)

	assert.Equal(t, SemesterFirst, resolver.Resolve(time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)).Semester)
	assert.Equal(t, SemesterSecond, resolver.Resolve(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)).Semester)
}

func TestResolverResolveIsDeterministic(t *testing.T) {
	resolver := NewResolver(defaultCutoff(), nil)
	at := time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)

	first := resolver.Resolve(at)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolver.Resolve(at))
	}
}

func TestResolverCurrentUsesInjectedClock(t *testing.T) {
	frozen := time.Date(2026, time.February, 2, 10, 0, 0, 0, time.UTC)
	resolver := NewResolver(defaultCutoff(), func() time.Time { return frozen })

	assert.Equal(t, Period{AcademicYear: "2026", Semester: SemesterFirst}, resolver.Current())
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "2026/SECOND", Period{AcademicYear: "2026", Semester: SemesterSecond}.String())
}
