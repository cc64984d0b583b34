package tui

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// Candle is one sample bar of the preview series
type Candle struct {
	Open, High, Low, Close float64
}

// previewSeries is a fixed sample; the preview only shows the chart style
var previewSeries = []Candle{
	{100.0, 102.4, 99.1, 101.8},
	{101.8, 103.5, 101.0, 103.1},
	{103.1, 103.9, 100.6, 101.2},
	{101.2, 102.0, 98.7, 99.4},
	{99.4, 101.1, 98.9, 100.9},
	{100.9, 104.2, 100.5, 103.8},
	{103.8, 105.6, 103.0, 105.1},
	{105.1, 105.4, 102.2, 102.9},
	{102.9, 104.0, 102.1, 103.6},
	{103.6, 106.3, 103.2, 106.0},
}

const (
	minPreviewWidth  = 24
	minPreviewHeight = 6
)

// renderChartPreview draws the sample series in the given chart mode
func renderChartPreview(kind models.ChartType, width, height int, theme Theme) string {
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	if height < minPreviewHeight {
		height = minPreviewHeight
	}

	lo, hi := seriesRange(previewSeries)
	margin := (hi - lo) * 0.1

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	riseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRise))
	fallStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFall))

	yLabel := func(_ int, v float64) string {
		return fmt.Sprintf("%.0f", v)
	}
	xLabel := func(_ int, _ float64) string {
		return ""
	}

	minY, maxY := lo-margin, hi+margin
	lc := linechart.New(width, height,
		-0.5, float64(len(previewSeries))-0.5,
		minY, maxY,
		linechart.WithXYSteps(1, 2),
		linechart.WithXLabelFormatter(xLabel),
		linechart.WithYLabelFormatter(yLabel),
		linechart.WithStyles(lipgloss.Style{}, lipgloss.Style{}, lineStyle),
	)

	switch kind {
	case models.ChartLine:
		drawClosePath(&lc, lineStyle)

	case models.ChartArea:
		for i, c := range previewSeries {
			x := float64(i)
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: x, Y: c.Close},
				canvas.Float64Point{X: x, Y: minY},
				lineStyle,
			)
			if i+1 < len(previewSeries) {
				mid := (c.Close + previewSeries[i+1].Close) / 2
				lc.DrawBrailleLineWithStyle(
					canvas.Float64Point{X: x + 0.5, Y: mid},
					canvas.Float64Point{X: x + 0.5, Y: minY},
					lineStyle,
				)
			}
		}
		drawClosePath(&lc, lineStyle)

	default:
		for i, c := range previewSeries {
			style := riseStyle
			if c.Close < c.Open {
				style = fallStyle
			}
			x := float64(i)
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: x, Y: c.Low},
				canvas.Float64Point{X: x, Y: c.High},
				style,
			)
			for _, dx := range []float64{-0.2, 0.2} {
				lc.DrawBrailleLineWithStyle(
					canvas.Float64Point{X: x + dx, Y: c.Open},
					canvas.Float64Point{X: x + dx, Y: c.Close},
					style,
				)
			}
		}
	}

	lc.DrawXYAxisAndLabel()
	return lc.View()
}

func drawClosePath(lc *linechart.Model, style lipgloss.Style) {
	for i := 0; i < len(previewSeries)-1; i++ {
		p1 := canvas.Float64Point{X: float64(i), Y: previewSeries[i].Close}
		p2 := canvas.Float64Point{X: float64(i + 1), Y: previewSeries[i+1].Close}
		lc.DrawBrailleLineWithStyle(p1, p2, style)
	}
}

func seriesRange(series []Candle) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range series {
		lo = math.Min(lo, c.Low)
		hi = math.Max(hi, c.High)
	}
	return lo, hi
}
