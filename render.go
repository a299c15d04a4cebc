package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/loaders"
	"github.com/df07/raito/pkg/renderer"
	"github.com/df07/raito/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// createScene builds a built-in scene by name, or loads an XML scene
// description when name is a path ending in .xml
func createScene(name string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("missing scene name")
	}
	if strings.EqualFold(filepath.Ext(name), ".xml") {
		return loaders.LoadXMLScene(name, cameraOverrides...)
	}
	return scene.Lookup(name, cameraOverrides...)
}

// applySettingsOverrides replaces scene settings given on the command line.
// Non-positive spp and negative bounces keep the scene values.
func applySettingsOverrides(s *scene.Scene, spp, bounces int) {
	if spp > 0 {
		s.Settings.SamplesPerPixel = spp
	}
	if bounces >= 0 {
		s.Settings.MaxBounces = bounces
	}
}

// outputPath returns output/<scene>/render_<timestamp>.png
func outputPath(sceneName string, now time.Time) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, sceneName)
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func rendererConfig(ctx *cli.Context) (renderer.Config, error) {
	mode, err := renderer.ParseBucketMode(ctx.String("mode"))
	if err != nil {
		return renderer.Config{}, err
	}

	config := renderer.DefaultConfig()
	config.TileSize = ctx.Int("tile")
	config.NumWorkers = ctx.Int("workers")
	config.Mode = mode
	config.SamplesPerPass = ctx.Int("pass-samples")
	config.Seed = ctx.Int64("seed")
	return config, nil
}

// progressLogger returns a bucket callback logging every finished bucket
func progressLogger(totalBuckets int) func(renderer.BucketCompletion) {
	finished := 0
	return func(done renderer.BucketCompletion) {
		if !done.Final {
			logger.Debugf("bucket %d at %d spp", done.BucketID, done.Samples)
			return
		}
		finished++
		logger.Infof("bucket %d done on worker %d in %v (%d/%d, %.0f%%)",
			done.BucketID, done.WorkerID, done.Duration, finished, totalBuckets,
			100*float64(finished)/float64(totalBuckets))
	}
}

// Render a still frame.
func renderAction(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	s, err := createScene(ctx.String("scene"), geometry.CameraConfig{Width: ctx.Int("width")})
	if err != nil {
		return err
	}
	applySettingsOverrides(s, ctx.Int("spp"), ctx.Int("bounces"))

	config, err := rendererConfig(ctx)
	if err != nil {
		return err
	}
	buckets := len(renderer.NewBucketGrid(s.Camera.Width(), s.Camera.Height(), config.TileSize))
	config.OnBucketDone = progressLogger(buckets)

	logger.Noticef("rendering scene %q (%d primitives, %d lights) at %dx%d with %d spp",
		s.Name, s.GetPrimitiveCount(), len(s.Lights), s.Camera.Width(), s.Camera.Height(), s.Settings.SamplesPerPixel)

	result := renderer.NewRenderResult(s.Camera.Width(), s.Camera.Height())
	stats, err := renderer.NewBucketRenderer(s, config).Render(result)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" {
		out = outputPath(s.Name, time.Now())
	}
	if err := loaders.SavePNG(out, result); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", out)
	return nil
}

func renderStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Buckets", "Samples", "% of samples", "Busy time"})
	for _, stat := range stats.PerWorker {
		percent := 0.0
		if stats.TotalSamples > 0 {
			percent = 100 * float64(stat.Samples) / float64(stats.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Buckets),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.Busy.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d", stats.Passes), fmt.Sprintf("%d", stats.TotalSamples), "TOTAL", stats.Elapsed.String()})

	table.Render()
	return buf.String()
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics (%.1f samples/pixel, %.0f samples/s)\n%s",
		stats.AverageSamples(), stats.SamplesPerSecond(), renderStatsTable(stats))
}

// List built-in and XML scenes.
func listScenesAction(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		id := info.ID
		if info.Type == scene.SceneTypeXML {
			id = info.FilePath
		}
		table.Append([]string{id, info.Name, info.Type, info.Description})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
