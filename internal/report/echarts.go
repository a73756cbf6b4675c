// Package report renders debug artifacts for a segmentation run: an
// interactive HTML report (go-echarts) and static PNG plots (gonum/plot).
// These are diagnostic outputs only; nothing in the pipeline reads them
// back.
package report

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/survey.lines/internal/geom"
	"github.com/banshee-data/survey.lines/internal/seg"
)

// displayRadius clamps the unbounded radius signal for charting: straight
// path sections are infinite and would destroy the axis range.
func displayRadius(r, criticalRadius float64) float64 {
	limit := 5 * criticalRadius
	a := math.Abs(r)
	if math.IsInf(a, 1) || a > limit {
		return limit
	}
	return a
}

// WriteHTML renders the segmentation report to an HTML file: the survey
// path with one scatter series per output line, and the turning radius
// signal against the critical threshold.
func WriteHTML(path string, points []geom.Point, radius []float64, lines []seg.Line, p seg.Params) error {
	steps := seg.StepDistances(points)
	meanStep := stat.Mean(steps, nil)

	pathChart := charts.NewScatter()
	pathChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Survey Line Segmentation", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Survey path by line",
			Subtitle: fmt.Sprintf("traces=%d lines=%d mean_step=%.1fm", len(points), len(lines), meanStep),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)
	for i, l := range lines {
		data := make([]opts.ScatterData, 0, l.TraceCount())
		for j := l.First; j <= l.Last; j++ {
			data = append(data, opts.ScatterData{Value: []interface{}{points[j].X, points[j].Y}})
		}
		name := fmt.Sprintf("line %03d (%.0fm)", i, l.Length)
		pathChart.AddSeries(name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	}

	radiusChart := charts.NewLine()
	radiusChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Turning radius",
			Subtitle: fmt.Sprintf("critical radius %.0fm, display clamped at %.0fm", p.CriticalRadius, 5*p.CriticalRadius),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Trace"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "|radius| (m)"}),
	)
	xAxis := make([]int, len(radius))
	radiusData := make([]opts.LineData, len(radius))
	criticalData := make([]opts.LineData, len(radius))
	for i, r := range radius {
		xAxis[i] = i
		radiusData[i] = opts.LineData{Value: displayRadius(r, p.CriticalRadius)}
		criticalData[i] = opts.LineData{Value: p.CriticalRadius}
	}
	radiusChart.SetXAxis(xAxis).
		AddSeries("|radius|", radiusData).
		AddSeries("critical", criticalData)

	page := components.NewPage()
	page.AddCharts(pathChart, radiusChart)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render report: %w", err)
	}
	return f.Close()
}
