package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okkura/contribsum/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestAnchorSunday(t *testing.T) {
	testCases := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "sunday stays put", date: "2024-01-07", expected: "2024-01-07"},
		{name: "monday rolls back one day", date: "2024-01-08", expected: "2024-01-07"},
		{name: "saturday rolls back six days", date: "2024-01-13", expected: "2024-01-07"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			anchor := AnchorSunday(mustDate(t, tc.date))
			assert.Equal(t, mustDate(t, tc.expected), anchor)
			// Anchoring an anchored date is a no-op.
			assert.Equal(t, anchor, AnchorSunday(anchor))
		})
	}
}

func TestBuildWeekGrid(t *testing.T) {
	testCases := []struct {
		name           string
		days           []domain.ContributionDay
		expectedAnchor string
		expectedCounts [][7]int
	}{
		{
			// 2024-01-07 is a Sunday.
			name: "single column when the range fits one week",
			days: []domain.ContributionDay{
				{Date: "2024-01-07", Count: 3, Level: 1},
				{Date: "2024-01-08", Count: 0, Level: 0},
			},
			expectedAnchor: "2024-01-07",
			expectedCounts: [][7]int{{3, 0, 0, 0, 0, 0, 0}},
		},
		{
			name: "mid-week start rolls back to the preceding Sunday",
			days: []domain.ContributionDay{
				{Date: "2024-01-10", Count: 2, Level: 1}, // Wednesday
				{Date: "2024-01-16", Count: 4, Level: 2}, // next Tuesday
			},
			expectedAnchor: "2024-01-07",
			expectedCounts: [][7]int{
				{0, 0, 0, 2, 0, 0, 0},
				{0, 0, 4, 0, 0, 0, 0},
			},
		},
		{
			name: "absent days in range default to zero across a gap week",
			days: []domain.ContributionDay{
				{Date: "2024-01-07", Count: 1, Level: 1},
				{Date: "2024-01-21", Count: 5, Level: 2},
			},
			expectedAnchor: "2024-01-07",
			expectedCounts: [][7]int{
				{1, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{5, 0, 0, 0, 0, 0, 0},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := BuildWeekGrid(tc.days)
			require.NoError(t, err)
			assert.Equal(t, mustDate(t, tc.expectedAnchor), grid.Anchor)
			assert.Equal(t, tc.expectedCounts, grid.Counts)
		})
	}
}

func TestBuildWeekGrid_EmptyInput(t *testing.T) {
	grid, err := BuildWeekGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyCalendar)
	assert.Nil(t, grid)
}

func TestBuildWeekGrid_InvalidDate(t *testing.T) {
	_, err := BuildWeekGrid([]domain.ContributionDay{{Date: "01/07/2024", Count: 1}})
	assert.Error(t, err)
}

func TestWeekGrid_WeekStart(t *testing.T) {
	grid, err := BuildWeekGrid([]domain.ContributionDay{
		{Date: "2024-01-07", Count: 1},
		{Date: "2024-01-20", Count: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, grid.Weeks())
	assert.Equal(t, mustDate(t, "2024-01-07"), grid.WeekStart(0))
	assert.Equal(t, mustDate(t, "2024-01-14"), grid.WeekStart(1))
}

func TestThemeBucketIndex(t *testing.T) {
	// Thresholds 0, 1-3, 4-6, 7-9, 10+ map onto palette indices 0-4.
	counts := []int{0, 1, 4, 7, 10, 2}
	expected := []int{0, 1, 2, 3, 4, 1}
	for i, count := range counts {
		assert.Equal(t, expected[i], Light.BucketIndex(count), "count %d", count)
		assert.Equal(t, expected[i], Dark.BucketIndex(count), "count %d", count)
	}
	assert.Equal(t, 2, Light.BucketIndex(6))
	assert.Equal(t, 4, Light.BucketIndex(250))
}

func TestWeekGridBuckets_SingleWeek(t *testing.T) {
	// One week starting on a Sunday with the canonical threshold counts.
	days := []domain.ContributionDay{
		{Date: "2024-01-07", Count: 0},
		{Date: "2024-01-08", Count: 1},
		{Date: "2024-01-09", Count: 4},
		{Date: "2024-01-10", Count: 7},
		{Date: "2024-01-11", Count: 10},
		{Date: "2024-01-12", Count: 2},
	}
	grid, err := BuildWeekGrid(days)
	require.NoError(t, err)
	require.Equal(t, 1, grid.Weeks())

	expected := []int{0, 1, 2, 3, 4, 1, 0}
	for row, count := range grid.Counts[0] {
		assert.Equal(t, expected[row], Light.BucketIndex(count), "row %d", row)
	}
}
