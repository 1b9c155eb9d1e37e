package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// RenderPDF lays the export out on A4 pages and returns the document bytes.
func RenderPDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)
	period := fmt.Sprintf("%s %d", data.Month, data.Year)

	m.AddRow(14,
		text.NewCol(12, data.Title(), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, data.Label(), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	bold := props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}
	boldRight := bold
	boldRight.Align = align.Right
	m.AddRow(8,
		text.NewCol(6, "Member", bold),
		text.NewCol(3, "Visits ("+period+")", boldRight),
		text.NewCol(3, "Total Visits (All Time)", boldRight),
	)
	for _, row := range data.Summary {
		m.AddRow(6,
			text.NewCol(6, row.Name, props.Text{Size: 9}),
			text.NewCol(3, strconv.Itoa(row.MonthCount), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, strconv.Itoa(row.TotalCount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8, text.NewCol(12, "Visits", bold))

	if len(data.Days) == 0 {
		m.AddRow(6, text.NewCol(12, "No visits recorded.", props.Text{Size: 9, Color: &pdfMutedColor}))
	}
	for _, day := range data.Days {
		m.AddRow(6,
			text.NewCol(4, day.Date.Format("Mon, Jan 2"), props.Text{Size: 9}),
			text.NewCol(8, strings.Join(day.Members, ", "), props.Text{Size: 9, Color: &pdfMutedColor}),
		)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total visits in "+period, props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, strconv.Itoa(data.MonthVisits), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
