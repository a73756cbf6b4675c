package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/survey.lines/internal/geom"
	"github.com/banshee-data/survey.lines/internal/seg"
)

// linePalette cycles through distinguishable colours for per-line series.
var linePalette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

// WriteRadiusPlot saves a PNG of the turning radius signal with the
// critical threshold drawn as a horizontal rule. The signal is clamped for
// display; see displayRadius.
func WriteRadiusPlot(path string, radius []float64, criticalRadius float64) error {
	p := plot.New()
	p.Title.Text = "Turning radius"
	p.X.Label.Text = "Trace"
	p.Y.Label.Text = "|radius| (m)"

	pts := make(plotter.XYs, len(radius))
	for i, r := range radius {
		pts[i] = plotter.XY{X: float64(i), Y: displayRadius(r, criticalRadius)}
	}
	radiusLine, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build radius series: %w", err)
	}
	radiusLine.Width = vg.Points(1)
	p.Add(radiusLine)
	p.Legend.Add("|radius|", radiusLine)

	rule, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: criticalRadius},
		{X: float64(len(radius) - 1), Y: criticalRadius},
	})
	if err != nil {
		return fmt.Errorf("failed to build threshold rule: %w", err)
	}
	rule.Width = vg.Points(1)
	rule.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	p.Add(rule)
	p.Legend.Add("critical", rule)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save radius plot: %w", err)
	}
	return nil
}

// WritePathPlot saves a PNG of the survey path with one colour per output
// line.
func WritePathPlot(path string, points []geom.Point, lines []seg.Line) error {
	p := plot.New()
	p.Title.Text = "Survey path by line"
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for i, l := range lines {
		pts := make(plotter.XYs, 0, l.TraceCount())
		for j := l.First; j <= l.Last; j++ {
			pts = append(pts, plotter.XY{X: points[j].X, Y: points[j].Y})
		}
		series, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build series for line %d: %w", i, err)
		}
		series.Width = vg.Points(1)
		series.Color = linePalette[i%len(linePalette)]
		p.Add(series)
		p.Legend.Add(fmt.Sprintf("line %03d", i), series)
	}

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save path plot: %w", err)
	}
	return nil
}
