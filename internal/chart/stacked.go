// Package chart renders count tables as images.
package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// Fallback colours once a palette runs out.
var fallbackPalette = []string{"#4a90e2", "#e74c3c", "#2ecc71", "#f1c40f", "#9b59b6"}

// StackedOptions configures a stacked bar SVG.
type StackedOptions struct {
	Title       string
	Width       int
	PanelHeight int
	// YMax fixes the y-axis maximum so charts of different seasons compare.
	// Zero scales to the tallest stack.
	YMax    int
	Palette []string
	// HighRankDark gives the highest ranked category the first palette colour.
	HighRankDark bool
}

func (o *StackedOptions) defaults() {
	if o.Width <= 0 {
		o.Width = 600
	}
	if o.PanelHeight <= 0 {
		o.PanelHeight = 350
	}
}

type panel struct {
	label  string
	totals map[string]int
	// segments[group][rank] = count
	segments map[string][]int
}

// StackedSVG writes a stacked bar chart of table: one bar per group, one
// segment per value of the last category stacked by rank. A table with two
// categories is faceted into one panel per value of the first category.
func StackedSVG(w io.Writer, table *models.CountTable, opts StackedOptions) error {
	opts.defaults()
	categories := len(table.Keys) - 1
	if categories < 1 || categories > 2 {
		return fmt.Errorf("stacked chart needs one or two categories, got %d", categories)
	}

	groups := table.Groups()
	stackIdx := categories - 1
	var stackLabels []string
	var panels []*panel
	panelByLabel := make(map[string]*panel)

	for _, r := range table.Rows {
		rank := r.Ranks[stackIdx]
		for len(stackLabels) <= rank {
			stackLabels = append(stackLabels, "")
		}
		stackLabels[rank] = r.Values[stackIdx]

		label := ""
		if categories == 2 {
			label = r.Values[0]
		}
		p, ok := panelByLabel[label]
		if !ok {
			p = &panel{label: label, totals: map[string]int{}, segments: map[string][]int{}}
			panelByLabel[label] = p
			panels = append(panels, p)
		}
		seg := p.segments[r.Group]
		for len(seg) <= rank {
			seg = append(seg, 0)
		}
		seg[rank] += r.Count
		p.segments[r.Group] = seg
		p.totals[r.Group] += r.Count
	}

	yMax := opts.YMax
	if yMax <= 0 {
		for _, p := range panels {
			for _, t := range p.totals {
				if t > yMax {
					yMax = t
				}
			}
		}
	}
	if yMax <= 0 {
		yMax = 1
	}

	colors := make([]string, len(stackLabels))
	for rank := range stackLabels {
		i := rank
		if opts.HighRankDark {
			i = len(stackLabels) - 1 - rank
		}
		colors[rank] = colorAt(opts.Palette, i)
	}

	const (
		padding  = 50
		titleGap = 40
		legendW  = 120
	)
	if len(panels) == 0 {
		panels = []*panel{{totals: map[string]int{}, segments: map[string][]int{}}}
	}
	width := opts.Width + legendW
	height := titleGap + len(panels)*(opts.PanelHeight+padding) + padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height, width, height))
	sb.WriteString(`<rect width="100%" height="100%" fill="white" />`)
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="28" fill="black" font-family="Arial" font-size="16" text-anchor="middle">%s</text>`, width/2, html.EscapeString(opts.Title)))

	barWidth := 0
	if len(groups) > 0 {
		barWidth = (opts.Width - 2*padding) / len(groups)
	}

	for pi, p := range panels {
		top := titleGap + pi*(opts.PanelHeight+padding)
		base := top + opts.PanelHeight

		if p.label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="black" font-family="Arial" font-size="12" text-anchor="start">%s</text>`, 10, top+14, html.EscapeString(p.label)))
		}

		for gi, g := range groups {
			x := padding + gi*barWidth
			y := base
			for rank, count := range p.segments[g] {
				if count == 0 {
					continue
				}
				h := count * opts.PanelHeight / yMax
				y -= h
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%s %s: %d</title></rect>`,
					x+4, y, barWidth-8, h, colors[rank], html.EscapeString(g), html.EscapeString(stackLabels[rank]), count))
			}
			if pi == len(panels)-1 {
				sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="black" font-family="Arial" font-size="11" text-anchor="middle">%s</text>`, x+barWidth/2, base+16, html.EscapeString(g)))
			}
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-width="1" />`, padding, base, opts.Width-padding, base))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="black" font-family="Arial" font-size="10" text-anchor="end">%d</text>`, padding-6, top+10, yMax))
	}

	// Legend lists the darkest colour first.
	for i := range stackLabels {
		rank := i
		if opts.HighRankDark {
			rank = len(stackLabels) - 1 - i
		}
		y := titleGap + 20 + i*20
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s" />`, opts.Width+10, y-10, colors[rank]))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="black" font-family="Arial" font-size="12">%s</text>`, opts.Width+28, y, html.EscapeString(stackLabels[rank])))
	}

	sb.WriteString(`</svg>`)
	_, err := io.WriteString(w, sb.String())
	return err
}

func colorAt(palette []string, i int) string {
	if i < len(palette) {
		return palette[i]
	}
	return fallbackPalette[(i-len(palette))%len(fallbackPalette)]
}
