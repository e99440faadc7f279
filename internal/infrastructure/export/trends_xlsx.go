// Package export renders player statistics into downloadable workbooks.
package export

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/hitting-tracker/internal/domain/grading"
	"github.com/riskibarqy/hitting-tracker/internal/domain/metrics"
	"github.com/riskibarqy/hitting-tracker/internal/domain/player"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	trendsSheet     = "Trends"
	reportCardSheet = "Report Card"
	dateLayout      = "2006-01-02"
)

var trendHeader = []any{
	"Date", "Type", "Label", "AB", "H", "K", "BB",
	"AVG", "AVG (rolling)", "Exit Velo", "Barrel %", "Whiff %", "Contact %",
}

// TrendReport is everything written into a trend workbook.
type TrendReport struct {
	Player     player.Player
	Points     []metrics.OutingTrendPoint
	Window     int
	ReportCard grading.ReportCard
}

// FileName is the attachment name offered to the browser.
func (r TrendReport) FileName() string {
	name := r.Player.ID
	if name == "" {
		name = "player"
	}
	return name + "-trends.xlsx"
}

// TrendWorkbook renders the report as an xlsx file.
func TrendWorkbook(report TrendReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trendsSheet); err != nil {
		return nil, errors.Wrap(err, "rename trends sheet")
	}
	if err := writeTrends(f, report); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(reportCardSheet); err != nil {
		return nil, errors.Wrap(err, "create report card sheet")
	}
	if err := writeReportCard(f, report.ReportCard); err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return append([]byte(nil), buf.B...), nil
}

func writeTrends(f *excelize.File, report TrendReport) error {
	if err := f.SetSheetRow(trendsSheet, "A1", &trendHeader); err != nil {
		return errors.Wrap(err, "write trends header")
	}

	window := report.Window
	if window < 1 {
		window = metrics.DefaultRollingWindow
	}
	rolling := metrics.RollingAverage(metrics.Series(report.Points, metrics.TrendAvg), window)

	for i, p := range report.Points {
		row := []any{
			p.Date.Format(dateLayout), p.Type.Abbreviation(), p.Label,
			p.AtBats, p.Hits, p.Strikeouts, p.Walks,
			p.Avg, rolling[i], p.ExitVelo, p.BarrelPct, p.WhiffRate, p.ContactPct,
		}
		if err := f.SetSheetRow(trendsSheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return errors.Wrapf(err, "write trend row %d", i)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	if err := f.SetCellStyle(trendsSheet, "A1", "M1", header); err != nil {
		return errors.Wrap(err, "style trends header")
	}

	if len(report.Points) > 0 {
		last := strconv.Itoa(len(report.Points) + 1)
		avgFmt := "0.000"
		avgStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &avgFmt})
		if err != nil {
			return errors.Wrap(err, "create average style")
		}
		if err := f.SetCellStyle(trendsSheet, "H2", "I"+last, avgStyle); err != nil {
			return errors.Wrap(err, "style averages")
		}
		rateFmt := "0.0"
		rateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &rateFmt})
		if err != nil {
			return errors.Wrap(err, "create rate style")
		}
		if err := f.SetCellStyle(trendsSheet, "J2", "M"+last, rateStyle); err != nil {
			return errors.Wrap(err, "style rates")
		}
	}

	if err := f.SetColWidth(trendsSheet, "A", "M", 13); err != nil {
		return errors.Wrap(err, "size trend columns")
	}
	return f.SetPanes(trendsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeReportCard(f *excelize.File, card grading.ReportCard) error {
	rows := [][]any{
		{"Category", "Metric", "Value", "Score", "Grade"},
		{"Overall", "", "", card.Overall.Score, string(card.Overall.Grade)},
	}
	for _, c := range []grading.CategoryGrade{card.Power, card.Contact, card.Discipline} {
		rows = append(rows, []any{c.Label, "", "", c.Score, string(c.Grade)})
		for _, m := range c.Metrics {
			rows = append(rows, []any{"", m.Label, m.DisplayValue, m.Score, string(m.Grade)})
		}
	}
	if !card.HasEnoughData {
		rows = append(rows, []any{"Note", "Fewer than " + strconv.Itoa(grading.MinAtBats) + " at-bats; grades are provisional"})
	}

	for i, row := range rows {
		if err := f.SetSheetRow(reportCardSheet, "A"+strconv.Itoa(i+1), &row); err != nil {
			return errors.Wrapf(err, "write report card row %d", i)
		}
	}
	return f.SetColWidth(reportCardSheet, "A", "E", 16)
}
