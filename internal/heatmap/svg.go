package heatmap

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	cellSize   = 11
	cellGap    = 2
	cellStride = cellSize + cellGap

	marginLeft = 28 // room for the weekday labels
	marginTop  = 18 // room for the month labels
	minWidth   = 220

	placeholderWidth  = 600
	placeholderHeight = 60
)

// weekdayLabels are the alternating row labels; empty rows stay unlabeled.
var weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// Render rasterizes the grid as an SVG heatmap in the given theme.
func Render(w io.Writer, grid *WeekGrid, theme Theme) {
	width := marginLeft + grid.Weeks()*cellStride + cellGap
	if width < minWidth {
		width = minWidth
	}
	height := marginTop + 7*cellStride

	labelStyle := fmt.Sprintf("font-family:sans-serif;font-size:9px;fill:%s", theme.LabelColor)
	canvas := svg.New(w)
	canvas.Start(width, height)

	for i := 0; i < grid.Weeks(); i++ {
		start := grid.WeekStart(i)
		if i == 0 || start.Month() != grid.WeekStart(i-1).Month() {
			canvas.Text(marginLeft+i*cellStride, marginTop-6, start.Format("Jan"), labelStyle)
		}
	}
	for row, label := range weekdayLabels {
		if label == "" {
			continue
		}
		canvas.Text(0, marginTop+row*cellStride+cellSize-2, label, labelStyle)
	}

	for col, counts := range grid.Counts {
		for row, count := range counts {
			x := marginLeft + col*cellStride
			y := marginTop + row*cellStride
			fill := "fill:" + theme.Palette[theme.BucketIndex(count)]
			canvas.Roundrect(x, y, cellSize, cellSize, 2, 2, fill)
		}
	}
	canvas.End()
}

// RenderPlaceholder writes the fixed-size image used when the calendar is
// empty.
func RenderPlaceholder(w io.Writer, theme Theme) {
	canvas := svg.New(w)
	canvas.Start(placeholderWidth, placeholderHeight)
	style := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:14px;fill:%s", theme.LabelColor)
	canvas.Text(placeholderWidth/2, placeholderHeight/2+5, "No data", style)
	canvas.End()
}
