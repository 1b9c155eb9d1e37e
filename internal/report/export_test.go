package report

import (
	"testing"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExportData(t *testing.T) {
	entries := []attendance.Entry{
		entry("1", "Alex P.", "2024-05-03"),
		entry("2", "Jamie L.", "2024-05-01"),
		entry("3", "Alex P.", "2024-05-01"),
		entry("4", "Alex P.", "2024-04-30"),
	}

	data := BuildExportData(entries, roster, AllMembers, 2024, time.May)

	assert.Equal(t, "All Members", data.Label())
	assert.Equal(t, 3, data.MonthVisits)
	require.Len(t, data.Days, 2)
	assert.Equal(t, 1, data.Days[0].Date.Day())
	assert.Equal(t, []string{"Alex P.", "Jamie L."}, data.Days[0].Members)
	assert.Equal(t, 3, data.Days[1].Date.Day())

	require.Len(t, data.Summary, 5)
	assert.Equal(t, "Alex P.", data.Summary[0].Name)
	assert.Equal(t, 2, data.Summary[0].MonthCount)
	assert.Equal(t, 3, data.Summary[0].TotalCount)
}

func TestBuildExportDataSelectedMember(t *testing.T) {
	entries := []attendance.Entry{
		entry("1", "Alex P.", "2024-05-03"),
		entry("2", "Jamie L.", "2024-05-01"),
	}

	data := BuildExportData(entries, roster, "Jamie L.", 2024, time.May)
	assert.Equal(t, "Jamie L.", data.Label())
	assert.Equal(t, 1, data.MonthVisits)
	require.Len(t, data.Summary, 1)
	require.Len(t, data.Days, 1)
	assert.Equal(t, []string{"Jamie L."}, data.Days[0].Members)
}

func TestBuildExportDataEmptyMonth(t *testing.T) {
	data := BuildExportData(nil, roster, AllMembers, 2024, time.May)
	assert.Empty(t, data.Days)
	assert.Zero(t, data.MonthVisits)
	assert.Len(t, data.Summary, 5)
}
