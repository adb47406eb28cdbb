// Package gateway provides a gateway to the GitHub GraphQL API,
// abstracting away the underlying client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const dateLayout = "2006-01-02"

// Day is one day of the provider's contribution calendar. Level is the
// display-intensity bucket already mapped to its 0-4 ordinal.
type Day struct {
	Date  time.Time
	Count int
	Level int
}

// Week is one column of the provider's contribution calendar.
type Week struct {
	Days []Day
}

// RepoActivity is the contribution count for one repository within a single
// contribution kind.
type RepoActivity struct {
	Repo      string
	IsPrivate bool
	Count     int
}

// ContributionActivity is the typed result of one contributions query.
// Per-repository slices keep the provider's ordering.
type ContributionActivity struct {
	Login                   string
	Name                    string
	CalendarTotal           int
	Weeks                   []Week
	TotalCommits            int
	TotalIssues             int
	TotalPullRequests       int
	TotalReviews            int
	RepositoriesWithCommits int
	HasRestricted           bool
	RestrictedCount         int
	EarliestRestrictedDate  string
	CommitRepos             []RepoActivity
	IssueRepos              []RepoActivity
	PullRequestRepos        []RepoActivity
	ReviewRepos             []RepoActivity
}

// Fetcher defines the behavior of a gateway for fetching contribution
// activity from GitHub.
type Fetcher interface {
	// FetchUserContributions returns the named user's activity for the
	// inclusive [from, to] range.
	FetchUserContributions(ctx context.Context, login string, from, to time.Time) (*ContributionActivity, error)
	// FetchViewerContributions returns the token owner's activity for the
	// profile's last year.
	FetchViewerContributions(ctx context.Context) (*ContributionActivity, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *githubv4.Client
	logger *logrus.Logger
}

// repositoryContributions mirrors the per-repository breakdown selection.
type repositoryContributions struct {
	Repository struct {
		NameWithOwner string
		IsPrivate     bool
	}
	Contributions struct {
		TotalCount int
	}
}

// contributionsCollection mirrors the contributionsCollection selection
// shared by the user and viewer queries.
type contributionsCollection struct {
	HasAnyRestrictedContributions      bool
	RestrictedContributionsCount       int
	EarliestRestrictedContributionDate *githubv4.Date
	ContributionCalendar               struct {
		TotalContributions int
		Weeks              []struct {
			ContributionDays []struct {
				Date              githubv4.Date
				ContributionCount int
				ContributionLevel githubv4.ContributionLevel
			}
		}
	}
	TotalCommitContributions                   int
	TotalIssueContributions                    int
	TotalPullRequestContributions              int
	TotalPullRequestReviewContributions        int
	TotalRepositoriesWithContributedCommits    int
	CommitContributionsByRepository            []repositoryContributions `graphql:"commitContributionsByRepository(maxRepositories: 100)"`
	IssueContributionsByRepository             []repositoryContributions `graphql:"issueContributionsByRepository(maxRepositories: 100)"`
	PullRequestContributionsByRepository       []repositoryContributions `graphql:"pullRequestContributionsByRepository(maxRepositories: 100)"`
	PullRequestReviewContributionsByRepository []repositoryContributions `graphql:"pullRequestReviewContributionsByRepository(maxRepositories: 100)"`
}

type userContributionsQuery struct {
	User struct {
		Login                   string
		Name                    string
		ContributionsCollection contributionsCollection `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

type viewerContributionsQuery struct {
	Viewer struct {
		Login                   string
		Name                    string
		ContributionsCollection contributionsCollection
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty endpoint targets api.github.com; a non-empty one targets an
// enterprise (or test) GraphQL URL.
func NewGitHubGateway(token, endpoint string, logger *logrus.Logger) Fetcher {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts},
	}
	var client *githubv4.Client
	if endpoint != "" {
		client = githubv4.NewEnterpriseClient(endpoint, httpClient)
	} else {
		client = githubv4.NewClient(httpClient)
	}
	return &GitHubGateway{client: client, logger: logger}
}

func (g *GitHubGateway) FetchUserContributions(ctx context.Context, login string, from, to time.Time) (*ContributionActivity, error) {
	g.logger.WithFields(logrus.Fields{
		"user": login,
		"from": from.Format(dateLayout),
		"to":   to.Format(dateLayout),
	}).Debug("Fetching contribution activity")

	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"from":  githubv4.DateTime{Time: from},
		"to":    githubv4.DateTime{Time: to},
	}
	var q userContributionsQuery
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for user contributions: %w", err)
	}
	return newActivity(q.User.Login, q.User.Name, &q.User.ContributionsCollection), nil
}

func (g *GitHubGateway) FetchViewerContributions(ctx context.Context) (*ContributionActivity, error) {
	g.logger.Debug("Fetching viewer contribution activity")

	var q viewerContributionsQuery
	if err := g.client.Query(ctx, &q, nil); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for viewer contributions: %w", err)
	}
	return newActivity(q.Viewer.Login, q.Viewer.Name, &q.Viewer.ContributionsCollection), nil
}

func newActivity(login, name string, cc *contributionsCollection) *ContributionActivity {
	activity := &ContributionActivity{
		Login:                   login,
		Name:                    name,
		CalendarTotal:           cc.ContributionCalendar.TotalContributions,
		TotalCommits:            cc.TotalCommitContributions,
		TotalIssues:             cc.TotalIssueContributions,
		TotalPullRequests:       cc.TotalPullRequestContributions,
		TotalReviews:            cc.TotalPullRequestReviewContributions,
		RepositoriesWithCommits: cc.TotalRepositoriesWithContributedCommits,
		HasRestricted:           cc.HasAnyRestrictedContributions,
		RestrictedCount:         cc.RestrictedContributionsCount,
		CommitRepos:             convRepos(cc.CommitContributionsByRepository),
		IssueRepos:              convRepos(cc.IssueContributionsByRepository),
		PullRequestRepos:        convRepos(cc.PullRequestContributionsByRepository),
		ReviewRepos:             convRepos(cc.PullRequestReviewContributionsByRepository),
	}
	if cc.EarliestRestrictedContributionDate != nil {
		activity.EarliestRestrictedDate = cc.EarliestRestrictedContributionDate.Format(dateLayout)
	}
	activity.Weeks = make([]Week, 0, len(cc.ContributionCalendar.Weeks))
	for _, w := range cc.ContributionCalendar.Weeks {
		week := Week{Days: make([]Day, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, Day{
				Date:  d.Date.Time,
				Count: d.ContributionCount,
				Level: levelOrdinal(d.ContributionLevel),
			})
		}
		activity.Weeks = append(activity.Weeks, week)
	}
	return activity
}

func convRepos(entries []repositoryContributions) []RepoActivity {
	repos := make([]RepoActivity, 0, len(entries))
	for _, e := range entries {
		repos = append(repos, RepoActivity{
			Repo:      e.Repository.NameWithOwner,
			IsPrivate: e.Repository.IsPrivate,
			Count:     e.Contributions.TotalCount,
		})
	}
	return repos
}

// levelOrdinal maps the provider's display-intensity enum to its 0-4
// ordinal. Unknown values map to 0: the level is display metadata only.
func levelOrdinal(level githubv4.ContributionLevel) int {
	switch level {
	case githubv4.ContributionLevelFirstQuartile:
		return 1
	case githubv4.ContributionLevelSecondQuartile:
		return 2
	case githubv4.ContributionLevelThirdQuartile:
		return 3
	case githubv4.ContributionLevelFourthQuartile:
		return 4
	default:
		return 0
	}
}
