// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"errors"
	"fmt"
)

// DateLayout is the calendar-date format used throughout the summary.
const DateLayout = "2006-01-02"

// ProfileRange is the placeholder range value used when the summary covers
// the profile's last year rather than an explicit date range.
const ProfileRange = "profile-last-year"

// ErrMissingField is returned when a persisted summary document lacks a
// required section.
var ErrMissingField = errors.New("missing required field")

// ContributionDay is one day of the contribution calendar.
// Level is the provider's display-intensity bucket, 0 (none) to 4 (highest).
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// RepositoryContribution is the activity count for one repository within a
// single contribution kind.
type RepositoryContribution struct {
	Repo      string `json:"repo"`
	IsPrivate bool   `json:"isPrivate"`
	Count     int    `json:"count"`
}

// User identifies the account the summary describes.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// DateRange is the inclusive range the summary covers. Both ends hold
// ProfileRange when the summary covers the profile's last year.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Label renders the range for human-readable output.
func (r DateRange) Label() string {
	if r.From == ProfileRange {
		return "last 12 months"
	}
	return fmt.Sprintf("%s – %s", r.From, r.To)
}

// Totals carries the provider's aggregate counters verbatim, including the
// anonymized restricted-activity metadata.
type Totals struct {
	CalendarTotal                      int    `json:"calendar_total"`
	Commits                            int    `json:"commits"`
	Issues                             int    `json:"issues"`
	PullRequests                       int    `json:"pull_requests"`
	Reviews                            int    `json:"reviews"`
	RepositoriesWithCommits            int    `json:"repositories_with_commits"`
	RestrictedContributionsPresent     bool   `json:"restricted_contributions_present"`
	RestrictedContributionsCount       int    `json:"restricted_contributions_count"`
	EarliestRestrictedContributionDate string `json:"earliest_restricted_contribution_date"`
}

// DailyActivity holds figures derived from the calendar days.
type DailyActivity struct {
	Mean        float64 `json:"mean"`
	Max         int     `json:"max"`
	BusiestDate string  `json:"busiest_date"`
}

// ByRepository groups the per-repository breakdowns by contribution kind.
// Each slice preserves the provider's ordering.
type ByRepository struct {
	Commits      []RepositoryContribution `json:"commits"`
	Issues       []RepositoryContribution `json:"issues"`
	PullRequests []RepositoryContribution `json:"pull_requests"`
	Reviews      []RepositoryContribution `json:"reviews"`
}

// ContributionSummary is the flattened, serializable summary of one user's
// contribution activity over one date range. The pointer sections let a
// re-read document distinguish an absent section from a zero one.
type ContributionSummary struct {
	User         *User             `json:"user"`
	Range        *DateRange        `json:"range"`
	Totals       *Totals           `json:"totals"`
	Daily        DailyActivity     `json:"daily"`
	ByRepository *ByRepository     `json:"by_repository"`
	CalendarDays []ContributionDay `json:"calendar_days"`
}

// Validate reports whether the summary carries every required section.
// CalendarDays may be empty; an empty calendar is valid.
func (s *ContributionSummary) Validate() error {
	switch {
	case s.User == nil:
		return fmt.Errorf("%w: user", ErrMissingField)
	case s.Range == nil:
		return fmt.Errorf("%w: range", ErrMissingField)
	case s.Totals == nil:
		return fmt.Errorf("%w: totals", ErrMissingField)
	case s.ByRepository == nil:
		return fmt.Errorf("%w: by_repository", ErrMissingField)
	}
	return nil
}
