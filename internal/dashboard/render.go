package dashboard

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"launchdash/internal/models"
)

const (
	DefaultChartWidth  = 800
	DefaultChartHeight = 450
)

var namedColors = map[string]drawing.Color{
	ColorSuccess: drawing.ColorFromHex("0000ff"),
	ColorFailure: drawing.ColorFromHex("808080"),
}

// boosterPalette colors scatter series in booster first-seen order.
var boosterPalette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
}

// RenderPie writes pie as an SVG document. A chart with no slices is written
// as a titled placeholder. Nothing is written when rendering fails.
func RenderPie(w io.Writer, pie models.PieChart, width, height int) error {
	if len(pie.Slices) == 0 || pie.Total() == 0 {
		return writePlaceholder(w, pie.Title, width, height)
	}

	values := make([]chart.Value, 0, len(pie.Slices))
	for _, slice := range pie.Slices {
		label := slice.Label
		if pie.TextInfo == "percent+label" {
			label = fmt.Sprintf("%s %.1f%%", slice.Label, slice.Percent)
		}

		value := chart.Value{Label: label, Value: float64(slice.Value)}
		if color, ok := namedColors[slice.Color]; ok {
			value.Style = chart.Style{
				FillColor:   color,
				StrokeColor: drawing.ColorWhite,
				FontColor:   drawing.ColorWhite,
			}
		}
		values = append(values, value)
	}

	graph := chart.PieChart{
		Title:  pie.Title,
		Width:  width,
		Height: height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return fmt.Errorf("rendering pie: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderScatter writes scatter as an SVG document with one dot series per
// booster label and a legend.
func RenderScatter(w io.Writer, scatter models.ScatterChart, width, height int) error {
	if len(scatter.Points) == 0 {
		return writePlaceholder(w, scatter.Title, width, height)
	}

	var series []chart.Series
	for i, label := range scatter.BoosterLabels() {
		s := chart.ContinuousSeries{
			Name: label,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    boosterPalette[i%len(boosterPalette)],
			},
		}
		for _, p := range scatter.Points {
			if p.BoosterLabel != label {
				continue
			}
			s.XValues = append(s.XValues, p.PayloadMassKg)
			s.YValues = append(s.YValues, float64(p.Class))
		}
		series = append(series, s)
	}

	xRange := payloadAxisRange(scatter)
	yTicks := make([]chart.Tick, len(scatter.YAxis.TickValues))
	for i, v := range scatter.YAxis.TickValues {
		yTicks[i] = chart.Tick{Value: v, Label: scatter.YAxis.TickText[i]}
	}

	graph := chart.Chart{
		Title:      scatter.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  scatter.XAxis.Title,
			Range: &chart.ContinuousRange{Min: xRange.Min, Max: xRange.Max},
		},
		YAxis: chart.YAxis{
			Name:  scatter.YAxis.Title,
			Range: &chart.ContinuousRange{Min: scatter.YAxis.Range.Min, Max: scatter.YAxis.Range.Max},
			Ticks: yTicks,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return fmt.Errorf("rendering scatter: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// payloadAxisRange returns the pinned axis range, or for an autoscaled axis the
// data extent padded by 5% so edge points are not drawn on the frame.
func payloadAxisRange(scatter models.ScatterChart) models.AxisRange {
	if scatter.XAxis.Range != nil {
		return *scatter.XAxis.Range
	}

	lo, hi := scatter.Points[0].PayloadMassKg, scatter.Points[0].PayloadMassKg
	for _, p := range scatter.Points[1:] {
		lo = min(lo, p.PayloadMassKg)
		hi = max(hi, p.PayloadMassKg)
	}

	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 100
	}
	return models.AxisRange{Min: lo - pad, Max: hi + pad}
}

func writePlaceholder(w io.Writer, title string, width, height int) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#808080">No launches match the current selection</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(title))
	return err
}
