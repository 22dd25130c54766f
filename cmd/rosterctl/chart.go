package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/chart"
	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/worker"
)

type chartSpec struct {
	view  logic.View
	by    string
	title string
	yMax  int
}

func chartCmd() *cobra.Command {
	var devMax, starEliteMax, workers int
	cmd := &cobra.Command{
		Use:   "chart <university> <season>",
		Short: "Render roster charts into the image directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			log := e.logger.Sugar()

			university, season := args[0], args[1]
			u, ok := e.registry.University(university)
			if !ok {
				return fmt.Errorf("unknown university %q", university)
			}
			snap, err := e.source.Load(cmd.Context(), university, season)
			if err != nil {
				return err
			}

			dir := filepath.Join(e.cfg.ImageDir, university, season)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create image dir: %w", err)
			}

			specs := []chartSpec{
				{logic.ViewClasses, "", "Player Class Distribution", 0},
				{logic.ViewDevTraits, "position", "Player Development Traits per Position", devMax},
				{logic.ViewStarElite, "position", "Star and Elite Players per Position", starEliteMax},
				{logic.ViewPipeline, "position", "Player Development Pipeline per Position", 0},
				{logic.ViewDevTraits, "group", "Player Development Traits per Group", devMax},
				{logic.ViewStarElite, "group", "Star and Elite Players per Group", starEliteMax},
				{logic.ViewPipeline, "group", "Player Development Pipeline per Group", 0},
			}
			pool := worker.NewPool(worker.PoolConfig{WorkerCount: workers, Logger: e.logger})
			pool.Start(cmd.Context())

			for _, s := range specs {
				table, err := logic.BuildTable(snap, s.view, s.by)
				if err != nil {
					pool.Stop()
					return err
				}
				name := fmt.Sprintf("%s_%s", season, strings.ReplaceAll(string(s.view), "-", "_"))
				if s.by != "" {
					name += "_per_" + s.by
				}
				path := filepath.Join(dir, name+"_"+university+".svg")
				opts := chart.StackedOptions{
					Title:        fmt.Sprintf("%s %s %s", u.Name, season, s.title),
					YMax:         s.yMax,
					Palette:      u.Palette,
					HighRankDark: s.view != logic.ViewClasses,
				}
				err = pool.Enqueue(worker.Job{Name: path, Run: func(ctx context.Context) error {
					if err := writeChart(path, func(f *os.File) error { return chart.StackedSVG(f, table, opts) }); err != nil {
						return err
					}
					log.Infow("Chart written", "path", path)
					return nil
				}})
				if err != nil {
					pool.Stop()
					return err
				}
			}

			quality := logic.YoungPlayerQuality(snap)
			bars := make([]chart.Bar, 0, len(quality))
			for _, q := range quality {
				if q.AvgOverallStart != nil {
					bars = append(bars, chart.Bar{Label: q.Group, Value: *q.AvgOverallStart})
				}
			}
			if len(bars) > 0 {
				path := filepath.Join(dir, fmt.Sprintf("%s_young_player_quality_%s.png", season, university))
				color := "#4a90e2"
				if len(u.Palette) > 0 {
					color = u.Palette[0]
				}
				title := fmt.Sprintf("%s %s Young Player Quality", u.Name, season)
				err := pool.Enqueue(worker.Job{Name: path, Run: func(ctx context.Context) error {
					if err := writeChart(path, func(f *os.File) error { return chart.BarPNG(f, title, bars, color, 99) }); err != nil {
						return err
					}
					log.Infow("Chart written", "path", path)
					return nil
				}})
				if err != nil {
					pool.Stop()
					return err
				}
			}
			return pool.Stop()
		},
	}
	cmd.Flags().IntVar(&devMax, "dev-max", 11, "Fixed y-axis maximum for dev trait charts (0 = auto)")
	cmd.Flags().IntVar(&starEliteMax, "star-elite-max", 8, "Fixed y-axis maximum for star and elite charts (0 = auto)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of charts rendered concurrently")
	return cmd
}

func writeChart(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
