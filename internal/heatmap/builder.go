package heatmap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/okkura/contribsum/internal/domain"
)

// Builder renders a contribution calendar into one heatmap image per theme.
type Builder struct {
	themes []Theme
	logger *logrus.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(themes []Theme, logger *logrus.Logger) *Builder {
	return &Builder{
		themes: themes,
		logger: logger,
	}
}

// OutputPath returns the image path the builder writes for a theme.
func OutputPath(outDir, themeName string) string {
	return filepath.Join(outDir, "contributions_"+themeName+".svg")
}

// RenderAll writes every theme's SVG under outDir. An empty calendar
// produces the placeholder image for every theme.
func (b *Builder) RenderAll(days []domain.ContributionDay, outDir string) error {
	var grid *WeekGrid
	if len(days) > 0 {
		var err error
		grid, err = BuildWeekGrid(days)
		if err != nil {
			return err
		}
		b.logger.WithField("weeks", grid.Weeks()).Debug("Built week grid")
	}

	var eg errgroup.Group
	for _, theme := range b.themes {
		theme := theme
		eg.Go(func() error {
			path := OutputPath(outDir, theme.Name)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create heatmap file: %w", err)
			}
			defer f.Close()

			if grid == nil {
				b.logger.WithField("theme", theme.Name).Debug("Empty calendar, writing placeholder")
				RenderPlaceholder(f, theme)
				return nil
			}
			Render(f, grid, theme)
			return nil
		})
	}
	return eg.Wait()
}
