// Package export renders breakpoint registries into distributable artifacts.
//
// This file implements the band diagram renderers. The diagram draws the
// viewport width axis with one row per breakpoint band, making it easy to
// eyeball where each at() range begins and ends. SVG is the primary format;
// PNG is a raster fallback for docs that cannot embed SVG.
package export

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// Diagram layout constants (pixels).
const (
	diagramWidth   = 960
	diagramRowH    = 36
	diagramTopPad  = 48
	diagramLeftPad = 96
	diagramAxisPad = 24
)

// Dracula-ish palette, matching the inspector TUI.
var bandFills = []string{"#BD93F9", "#8BE9FD", "#50FA7B", "#FFB86C", "#FF79C6", "#F1FA8C"}

const (
	diagramBg   = "#282A36"
	diagramText = "#F8F8F2"
	diagramAxis = "#6272A4"
)

// band is one row of the diagram: the half-open range owned by a breakpoint.
type band struct {
	name  string
	from  int
	to    int // 0 when open-ended
	label string
}

// bands derives the diagram rows from the registry's sorted sequence.
func bands(reg *mediaquery.Registry) []band {
	names := reg.SortedNames()
	out := make([]band, 0, len(names))
	for i, name := range names {
		from, _ := reg.Width(name)
		b := band{name: name, from: from}
		if i+1 < len(names) {
			b.to, _ = reg.Width(names[i+1])
			b.label = fmt.Sprintf("%s  [%d, %d)", name, b.from, b.to)
		} else {
			b.label = fmt.Sprintf("%s  [%d, ∞)", name, b.from)
		}
		out = append(out, b)
	}
	return out
}

// axisMax picks the right edge of the drawn axis: one band-width past the
// largest breakpoint so the open-ended band has room to render.
func axisMax(reg *mediaquery.Registry) int {
	largest, _ := reg.Width(reg.Largest())
	if largest == 0 {
		return 100
	}
	return largest + largest/4
}

// WriteSVG renders the band diagram as SVG.
func WriteSVG(w io.Writer, reg *mediaquery.Registry) error {
	rows := bands(reg)
	max := axisMax(reg)
	height := diagramTopPad + len(rows)*diagramRowH + diagramAxisPad

	plotW := diagramWidth - diagramLeftPad - diagramAxisPad
	scale := func(px int) int {
		return diagramLeftPad + px*plotW/max
	}

	canvas := svg.New(w)
	canvas.Start(diagramWidth, height)
	canvas.Rect(0, 0, diagramWidth, height, "fill:"+diagramBg)
	canvas.Text(diagramLeftPad, 28, "Breakpoint bands",
		"fill:"+diagramText+";font-family:monospace;font-size:16px")

	for i, row := range rows {
		y := diagramTopPad + i*diagramRowH
		x0 := scale(row.from)
		x1 := scale(max)
		if row.to > 0 {
			x1 = scale(row.to)
		}
		fill := bandFills[i%len(bandFills)]
		canvas.Rect(x0, y, x1-x0, diagramRowH-10, "fill:"+fill+";fill-opacity:0.85")
		canvas.Text(8, y+diagramRowH-16, row.label,
			"fill:"+diagramText+";font-family:monospace;font-size:12px")
	}

	// Axis with a tick at every breakpoint width.
	axisY := diagramTopPad + len(rows)*diagramRowH
	canvas.Line(diagramLeftPad, axisY, scale(max), axisY, "stroke:"+diagramAxis+";stroke-width:1")
	for _, row := range rows {
		x := scale(row.from)
		canvas.Line(x, axisY-4, x, axisY+4, "stroke:"+diagramAxis+";stroke-width:1")
		canvas.Text(x, axisY+18, fmt.Sprintf("%d", row.from),
			"fill:"+diagramAxis+";font-family:monospace;font-size:10px;text-anchor:middle")
	}
	canvas.End()
	return nil
}

// WritePNG renders the band diagram as PNG.
func WritePNG(w io.Writer, reg *mediaquery.Registry) error {
	rows := bands(reg)
	max := axisMax(reg)
	height := diagramTopPad + len(rows)*diagramRowH + diagramAxisPad

	plotW := float64(diagramWidth - diagramLeftPad - diagramAxisPad)
	scale := func(px int) float64 {
		return float64(diagramLeftPad) + float64(px)*plotW/float64(max)
	}

	dc := gg.NewContext(diagramWidth, height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor(diagramBg)
	dc.Clear()

	dc.SetHexColor(diagramText)
	dc.DrawString("Breakpoint bands", float64(diagramLeftPad), 28)

	for i, row := range rows {
		y := float64(diagramTopPad + i*diagramRowH)
		x0 := scale(row.from)
		x1 := scale(max)
		if row.to > 0 {
			x1 = scale(row.to)
		}
		dc.SetHexColor(bandFills[i%len(bandFills)])
		dc.DrawRectangle(x0, y, x1-x0, float64(diagramRowH-10))
		dc.Fill()

		dc.SetHexColor(diagramText)
		dc.DrawString(row.label, 8, y+float64(diagramRowH-16))
	}

	axisY := float64(diagramTopPad + len(rows)*diagramRowH)
	dc.SetHexColor(diagramAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(float64(diagramLeftPad), axisY, scale(max), axisY)
	dc.Stroke()
	for _, row := range rows {
		x := scale(row.from)
		dc.DrawLine(x, axisY-4, x, axisY+4)
		dc.Stroke()
		dc.DrawString(fmt.Sprintf("%d", row.from), x-8, axisY+18)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode diagram PNG: %w", err)
	}
	return nil
}
