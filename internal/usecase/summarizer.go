// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"

	"github.com/okkura/contribsum/internal/domain"
	"github.com/okkura/contribsum/internal/gateway"
)

// Summarizer is the use case for flattening fetched contribution activity
// into a serializable summary.
type Summarizer struct {
	fetcher gateway.Fetcher
	logger  *logrus.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(fetcher gateway.Fetcher, logger *logrus.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Summarize fetches one user's activity and flattens it into a
// ContributionSummary. An empty login targets the token owner's profile
// over its last year and ignores the range arguments.
func (s *Summarizer) Summarize(ctx context.Context, login string, from, to time.Time) (*domain.ContributionSummary, error) {
	var (
		activity *gateway.ContributionActivity
		rng      domain.DateRange
		err      error
	)
	if login == "" {
		activity, err = s.fetcher.FetchViewerContributions(ctx)
		rng = domain.DateRange{From: domain.ProfileRange, To: domain.ProfileRange}
	} else {
		activity, err = s.fetcher.FetchUserContributions(ctx, login, from, to)
		rng = domain.DateRange{
			From: from.Format(domain.DateLayout),
			To:   to.Format(domain.DateLayout),
		}
	}
	if err != nil {
		return nil, err
	}
	s.logger.WithField("user", activity.Login).Debug("Usecase: Building contribution summary")
	return buildSummary(activity, rng), nil
}

func buildSummary(activity *gateway.ContributionActivity, rng domain.DateRange) *domain.ContributionSummary {
	days := make([]domain.ContributionDay, 0, len(activity.Weeks)*7)
	for _, week := range activity.Weeks {
		for _, day := range week.Days {
			days = append(days, domain.ContributionDay{
				Date:  day.Date.Format(domain.DateLayout),
				Count: day.Count,
				Level: day.Level,
			})
		}
	}
	return &domain.ContributionSummary{
		User: &domain.User{
			Login: activity.Login,
			Name:  activity.Name,
		},
		Range: &rng,
		Totals: &domain.Totals{
			CalendarTotal:                      activity.CalendarTotal,
			Commits:                            activity.TotalCommits,
			Issues:                             activity.TotalIssues,
			PullRequests:                       activity.TotalPullRequests,
			Reviews:                            activity.TotalReviews,
			RepositoriesWithCommits:            activity.RepositoriesWithCommits,
			RestrictedContributionsPresent:     activity.HasRestricted,
			RestrictedContributionsCount:       activity.RestrictedCount,
			EarliestRestrictedContributionDate: activity.EarliestRestrictedDate,
		},
		Daily: dailyActivity(days),
		ByRepository: &domain.ByRepository{
			Commits:      convRepos(activity.CommitRepos),
			Issues:       convRepos(activity.IssueRepos),
			PullRequests: convRepos(activity.PullRequestRepos),
			Reviews:      convRepos(activity.ReviewRepos),
		},
		CalendarDays: days,
	}
}

// convRepos converts the gateway's per-repository breakdown, preserving
// the provider's ordering.
func convRepos(entries []gateway.RepoActivity) []domain.RepositoryContribution {
	repos := make([]domain.RepositoryContribution, 0, len(entries))
	for _, e := range entries {
		repos = append(repos, domain.RepositoryContribution{
			Repo:      e.Repo,
			IsPrivate: e.IsPrivate,
			Count:     e.Count,
		})
	}
	return repos
}

// dailyActivity derives the mean and peak daily figures from the calendar.
// Ties on the peak keep the earliest date.
func dailyActivity(days []domain.ContributionDay) domain.DailyActivity {
	if len(days) == 0 {
		return domain.DailyActivity{}
	}
	counts := make([]float64, len(days))
	busiest := days[0]
	for i, d := range days {
		counts[i] = float64(d.Count)
		if d.Count > busiest.Count {
			busiest = d
		}
	}
	mean, err := stats.Mean(counts)
	if err != nil {
		mean = 0
	}
	return domain.DailyActivity{
		Mean:        mean,
		Max:         busiest.Count,
		BusiestDate: busiest.Date,
	}
}
