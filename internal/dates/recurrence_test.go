package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFreq  rrule.Frequency
		wantIntvl int
		wantDays  []rrule.Weekday
		wantErr   bool
	}{
		{name: "daily", input: "daily", wantFreq: rrule.DAILY},
		{name: "every day", input: "Every Day", wantFreq: rrule.DAILY},
		{name: "every other day", input: "every other day", wantFreq: rrule.DAILY, wantIntvl: 2},
		{name: "every 3 days", input: "every 3 days", wantFreq: rrule.DAILY, wantIntvl: 3},
		{
			name: "weekdays", input: "weekdays", wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		},
		{
			name: "weekends", input: "every weekend", wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.SA, rrule.SU},
		},
		{
			name: "single weekday", input: "every monday", wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO},
		},
		{
			name: "weekday list", input: "every mon, wed and fri", wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.MO, rrule.WE, rrule.FR},
		},
		{
			name: "raw rrule", input: "RRULE:FREQ=WEEKLY;BYDAY=TU,TH", wantFreq: rrule.WEEKLY,
			wantDays: []rrule.Weekday{rrule.TU, rrule.TH},
		},
		{name: "raw freq", input: "FREQ=DAILY;INTERVAL=4", wantFreq: rrule.DAILY, wantIntvl: 4},
		{name: "bad weekday", input: "every funday", wantErr: true},
		{name: "every 0 days", input: "every 0 days", wantErr: true},
		{name: "nonsense", input: "sometimes", wantErr: true},
		{name: "bad raw", input: "FREQ=HOURLYISH", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRecurrence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFreq, r.OrigOptions.Freq)
			if tt.wantIntvl > 0 {
				assert.Equal(t, tt.wantIntvl, r.OrigOptions.Interval)
			}
			if tt.wantDays != nil {
				assert.Equal(t, tt.wantDays, r.OrigOptions.Byweekday)
			}
		})
	}
}

func TestExpandWeekdaysInWeek(t *testing.T) {
	// 2024-05-06 is a Monday.
	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	got, err := Expand("every mon, wed, fri", from, to)
	require.NoError(t, err)

	var formatted []string
	for _, d := range got {
		formatted = append(formatted, Format(d))
	}
	assert.Equal(t, []string{"2024-05-06", "2024-05-08", "2024-05-10"}, formatted)
}

func TestExpandDailyIsInclusive(t *testing.T) {
	from := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 3, 7, 0, 0, 0, time.UTC)

	got, err := Expand("daily", from, to)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), got[2])
}

func TestExpandIntervalAnchoredOnFrom(t *testing.T) {
	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)

	got, err := Expand("every other day", from, to)
	require.NoError(t, err)

	var formatted []string
	for _, d := range got {
		formatted = append(formatted, Format(d))
	}
	assert.Equal(t, []string{"2024-05-02", "2024-05-04", "2024-05-06", "2024-05-08"}, formatted)
}

func TestExpandReversedRange(t *testing.T) {
	from := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := Expand("daily", from, to)
	assert.Error(t, err)
}

func TestExpandBadPattern(t *testing.T) {
	_, err := Expand("whenever", time.Now(), time.Now())
	assert.Error(t, err)
}
