package readme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSummary = "### Contributions summary (last 12 months)\n- Total contributions: **42**\n"

func TestSplice(t *testing.T) {
	block := Block(testSummary, "assets/contributions_light.svg")

	testCases := []struct {
		name    string
		content string
		check   func(t *testing.T, result string)
		wantErr error
	}{
		{
			name:    "appends a marked region when no markers exist",
			content: "# My profile\n\nHello.\n",
			check: func(t *testing.T, result string) {
				assert.Contains(t, result, "# My profile")
				assert.Equal(t, 1, strings.Count(result, StartMarker))
				assert.Equal(t, 1, strings.Count(result, EndMarker))
				assert.Contains(t, result, "![Contributions heatmap](assets/contributions_light.svg)")
			},
		},
		{
			name:    "replaces stale content between existing markers",
			content: "# My profile\n\n" + StartMarker + "\nold stuff\n" + EndMarker + "\n\n## Footer\n",
			check: func(t *testing.T, result string) {
				assert.NotContains(t, result, "old stuff")
				assert.Contains(t, result, "Total contributions: **42**")
				assert.Contains(t, result, "## Footer")
			},
		},
		{
			name:    "rejects a half-open region",
			content: "# My profile\n\n" + StartMarker + "\ndangling\n",
			wantErr: ErrMarkerMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Splice(tc.content, block)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, result)
		})
	}
}

func TestSplice_Idempotent(t *testing.T) {
	block := Block(testSummary, "assets/contributions_light.svg")

	once, err := Splice("# My profile\n", block)
	require.NoError(t, err)
	twice, err := Splice(once, block)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, StartMarker))
	assert.Equal(t, 1, strings.Count(twice, EndMarker))
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	summaryPath := filepath.Join(dir, "summary.md")
	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(summaryPath, []byte(testSummary), 0o644))
	require.NoError(t, os.WriteFile(readmePath, []byte("# My profile\n"), 0o644))

	require.NoError(t, Update(readmePath, summaryPath, "assets/contributions_light.svg"))
	first, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Contains(t, string(first), "Total contributions: **42**")

	// A second run leaves the file unchanged.
	require.NoError(t, Update(readmePath, summaryPath, "assets/contributions_light.svg"))
	second, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestUpdate_MissingSummary(t *testing.T) {
	dir := t.TempDir()
	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("# My profile\n"), 0o644))

	err := Update(readmePath, filepath.Join(dir, "missing.md"), "img.svg")
	assert.Error(t, err)
}
