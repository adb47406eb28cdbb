package heatmap

// Theme is one rendering configuration: a palette for a background style
// and the count thresholds that select a palette index. Passed explicitly
// into the renderer rather than consulted as package state.
type Theme struct {
	Name       string
	Palette    [5]string
	LabelColor string
	Thresholds [5]int
}

// Light and Dark are the two shipped themes, using GitHub's calendar
// palettes for the matching background.
var (
	Light = Theme{
		Name:       "light",
		Palette:    [5]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
		LabelColor: "#57606a",
		Thresholds: defaultThresholds,
	}
	Dark = Theme{
		Name:       "dark",
		Palette:    [5]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
		LabelColor: "#8b949e",
		Thresholds: defaultThresholds,
	}
)

// defaultThresholds is the minimum daily count for each palette index:
// 0, 1-3, 4-6, 7-9, 10+.
var defaultThresholds = [5]int{0, 1, 4, 7, 10}

// BucketIndex returns the highest palette index whose threshold does not
// exceed count.
func (t Theme) BucketIndex(count int) int {
	idx := 0
	for i, threshold := range t.Thresholds {
		if count >= threshold {
			idx = i
		}
	}
	return idx
}
