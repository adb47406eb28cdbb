// Package heatmap aligns contribution days into calendar weeks and
// rasterizes them as themed SVG heatmaps.
package heatmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/okkura/contribsum/internal/domain"
)

// ErrEmptyCalendar is returned when a grid is requested for a calendar
// with no days.
var ErrEmptyCalendar = errors.New("calendar has no days")

// WeekGrid holds contribution counts aligned to calendar weeks: one column
// per week, 7 rows per column with row 0 = Sunday, columns chronological.
type WeekGrid struct {
	Anchor time.Time
	Counts [][7]int
}

// Weeks returns the number of week columns.
func (g *WeekGrid) Weeks() int {
	return len(g.Counts)
}

// WeekStart returns the Sunday the i-th column starts on.
func (g *WeekGrid) WeekStart(i int) time.Time {
	return g.Anchor.AddDate(0, 0, 7*i)
}

// AnchorSunday rolls d back to the preceding Sunday. A Sunday is returned
// unchanged, so anchoring is idempotent.
func AnchorSunday(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// BuildWeekGrid aligns the day sequence to full calendar weeks. The anchor
// is the earliest date rolled back to its Sunday; columns stride forward in
// 7-day steps until past the latest date. Dates absent from the input
// count 0, so every calendar day in range lands in exactly one cell.
func BuildWeekGrid(days []domain.ContributionDay) (*WeekGrid, error) {
	if len(days) == 0 {
		return nil, ErrEmptyCalendar
	}

	counts := make(map[time.Time]int, len(days))
	var earliest, latest time.Time
	for _, day := range days {
		date, err := time.Parse(domain.DateLayout, day.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar date %q: %w", day.Date, err)
		}
		counts[date] = day.Count
		if earliest.IsZero() || date.Before(earliest) {
			earliest = date
		}
		if date.After(latest) {
			latest = date
		}
	}

	grid := &WeekGrid{Anchor: AnchorSunday(earliest)}
	for cur := grid.Anchor; !cur.After(latest); cur = cur.AddDate(0, 0, 7) {
		var col [7]int
		for offset := 0; offset < 7; offset++ {
			col[offset] = counts[cur.AddDate(0, 0, offset)]
		}
		grid.Counts = append(grid.Counts, col)
	}
	return grid, nil
}
