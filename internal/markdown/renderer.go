// Package markdown renders a contribution summary as Markdown text.
package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okkura/contribsum/internal/domain"
)

// topListSize caps each per-kind repository ranking.
const topListSize = 10

// Render turns a summary into publishable Markdown. It is deterministic
// and echoes the summary's totals without recomputing them.
func Render(s *domain.ContributionSummary) string {
	t := s.Totals
	var lines []string

	lines = append(lines, fmt.Sprintf("### Contributions summary (%s)", s.Range.Label()))
	lines = append(lines, fmt.Sprintf("- Total contributions: **%d**", t.CalendarTotal))
	lines = append(lines, fmt.Sprintf("- Commits: **%d**, Issues: **%d**, PRs: **%d**, Reviews: **%d**",
		t.Commits, t.Issues, t.PullRequests, t.Reviews))
	if len(s.CalendarDays) > 0 {
		lines = append(lines, fmt.Sprintf("- Daily average: **%.1f**, busiest day: %s (**%d**)",
			s.Daily.Mean, s.Daily.BusiestDate, s.Daily.Max))
	}
	if t.RestrictedContributionsPresent {
		lines = append(lines, fmt.Sprintf("- Includes anonymized private/internal activity: **%d**",
			t.RestrictedContributionsCount))
	}
	lines = append(lines, "")

	section := func(title string, entries []domain.RepositoryContribution) {
		lines = append(lines, fmt.Sprintf("#### Top %s", title))
		ranked := topRepos(entries, topListSize)
		if len(ranked) == 0 {
			lines = append(lines, "_No data_")
		}
		for _, e := range ranked {
			priv := ""
			if e.IsPrivate {
				priv = " (private)"
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %d%s", e.Repo, e.Count, priv))
		}
		lines = append(lines, "")
	}

	section("commit repos", s.ByRepository.Commits)
	section("PR repos", s.ByRepository.PullRequests)
	section("issue repos", s.ByRepository.Issues)
	section("reviewed repos", s.ByRepository.Reviews)

	return strings.Join(lines, "\n")
}

// topRepos ranks entries descending by count, keeping the provider order
// for ties, and truncates to n.
func topRepos(entries []domain.RepositoryContribution, n int) []domain.RepositoryContribution {
	ranked := make([]domain.RepositoryContribution, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
