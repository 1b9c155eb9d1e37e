package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mayExport(t *testing.T) ExportData {
	t.Helper()
	entries := []attendance.Entry{
		entry("1", "Alex P.", "2024-05-01"),
		entry("2", "Jamie L.", "2024-05-01"),
		entry("3", "Alex P.", "2024-05-08"),
	}
	return BuildExportData(entries, roster, AllMembers, 2024, time.May)
}

func TestFileName(t *testing.T) {
	data := mayExport(t)
	assert.Equal(t, "attendance-all-members-2024-05.md", data.FileName("md"))

	data.Selected = "Alex P."
	assert.Equal(t, "attendance-alex-p-2024-05.pdf", data.FileName("pdf"))

	data.Selected = "!!!"
	assert.Equal(t, "attendance-member-2024-05.html", data.FileName("html"))
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(mayExport(t))

	assert.Contains(t, md, "# Attendance Report: May 2024")
	assert.Contains(t, md, "Member: All Members")
	assert.Contains(t, md, "| Member | Visits (May 2024) | Total Visits (All Time) |")
	assert.Contains(t, md, "| Alex P. | 2 | 2 |")
	assert.Contains(t, md, "| Jordan M. | 0 | 0 |")
	assert.Contains(t, md, "- **Wed, May 1**: Alex P., Jamie L.")
	assert.Contains(t, md, "Total visits in May 2024: 3")
}

func TestRenderMarkdownNoVisits(t *testing.T) {
	data := BuildExportData(nil, roster, AllMembers, 2024, time.June)
	md := RenderMarkdown(data)

	assert.Contains(t, md, "_No visits recorded._")
	assert.NotContains(t, md, "Total visits in")
}

func TestRenderMarkdownEscapesNames(t *testing.T) {
	data := BuildExportData(nil, []string{"A|B"}, AllMembers, 2024, time.May)
	assert.Contains(t, RenderMarkdown(data), `| A\|B | 0 | 0 |`)
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(mayExport(t))
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>Attendance Report: May 2024</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>Alex P.</td>")
	assert.Contains(t, page, "<strong>Wed, May 1</strong>")
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(mayExport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
