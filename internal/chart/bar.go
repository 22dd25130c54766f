package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// BarPNG renders a single-series bar chart as PNG.
func BarPNG(w io.Writer, title string, bars []Bar, color string, yMax float64) error {
	if len(bars) == 0 {
		return fmt.Errorf("bar chart %q has no bars", title)
	}

	fill := hexColor(color)
	values := make([]gochart.Value, len(bars))
	top := yMax
	for i, b := range bars {
		values[i] = gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 0},
		}
		if yMax <= 0 && b.Value > top {
			top = b.Value
		}
	}
	if top <= 0 {
		top = 1
	}

	graph := gochart.BarChart{
		Title:      title,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Width:      600,
		Height:     400,
		BarWidth:   30,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: values,
	}
	return graph.Render(gochart.PNG, w)
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}
