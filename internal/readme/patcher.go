// Package readme splices generated summary content into a README between
// sentinel marker comments.
package readme

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// StartMarker and EndMarker delimit the managed region of the README.
const (
	StartMarker = "<!--CONTRIB_SUMMARY_START-->"
	EndMarker   = "<!--CONTRIB_SUMMARY_END-->"
)

// ErrMarkerMismatch is returned when exactly one of the two markers exists;
// splicing around a half-open region would duplicate the other marker.
var ErrMarkerMismatch = errors.New("readme contains exactly one summary marker")

// Block assembles the managed region's content: the summary Markdown
// followed by the heatmap embed line.
func Block(summary, imagePath string) string {
	return fmt.Sprintf("%s\n![Contributions heatmap](%s)", strings.TrimRight(summary, "\n"), imagePath)
}

// Splice returns content with the region between the markers replaced by
// block. When neither marker exists, a fresh marked region is appended.
// Splicing the same block twice yields the same result.
func Splice(content, block string) (string, error) {
	hasStart := strings.Contains(content, StartMarker)
	hasEnd := strings.Contains(content, EndMarker)
	switch {
	case hasStart != hasEnd:
		return "", ErrMarkerMismatch
	case !hasStart:
		return fmt.Sprintf("%s\n\n%s\n%s\n%s\n", strings.TrimRight(content, "\n"), StartMarker, block, EndMarker), nil
	}
	pre, rest, _ := strings.Cut(content, StartMarker)
	_, post, _ := strings.Cut(rest, EndMarker)
	return pre + StartMarker + "\n" + block + "\n" + EndMarker + post, nil
}

// Update patches the README file in place with the summary file's content
// and the heatmap embed line.
func Update(readmePath, summaryPath, imagePath string) error {
	summary, err := os.ReadFile(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to read summary: %w", err)
	}
	content, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read readme: %w", err)
	}
	patched, err := Splice(string(content), Block(string(summary), imagePath))
	if err != nil {
		return err
	}
	if err := os.WriteFile(readmePath, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("failed to write readme: %w", err)
	}
	return nil
}
