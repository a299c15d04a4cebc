package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/loaders"
	"github.com/df07/raito/pkg/log"
	"github.com/df07/raito/pkg/renderer"
	"github.com/df07/raito/pkg/scene"
)

func writeTestScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ball.xml")
	content := `<scene name="ball">
  <settings spp="1" bounces="2"/>
  <sphere center="0 0 -1" radius="0.5"><shader type="static" color="1 0 0"/></sphere>
</scene>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}
	return path
}

func TestCreateScene(t *testing.T) {
	xmlPath := writeTestScene(t)

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"materials scene", "materials", false},
		{"normals scene", "normals", false},
		{"spheregrid scene", "spheregrid", false},

		// XML scenes (by path)
		{"direct XML path", xmlPath, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid XML path", filepath.Join(t.TempDir(), "nonexistent.xml"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, geometry.CameraConfig{Width: 32})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera.Width() != 32 {
				t.Errorf("Expected camera width override 32, got %d", s.Camera.Width())
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene does not validate: %v", err)
			}
		})
	}
}

func TestApplySettingsOverrides(t *testing.T) {
	tests := []struct {
		name     string
		spp      int
		bounces  int
		expected scene.Settings
	}{
		{"keep scene values", 0, -1, scene.Settings{SamplesPerPixel: 16, MaxBounces: 8}},
		{"override both", 4, 2, scene.Settings{SamplesPerPixel: 4, MaxBounces: 2}},
		{"zero bounces", 0, 0, scene.Settings{SamplesPerPixel: 16, MaxBounces: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.NewScene("test", nil, scene.Settings{SamplesPerPixel: 16, MaxBounces: 8})
			applySettingsOverrides(s, tt.spp, tt.bounces)
			if s.Settings != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, s.Settings)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := outputPath("sphere grid", now)
	expected := filepath.Join("output", "sphere_grid", "render_20240309_140507.png")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderStatsTable(t *testing.T) {
	stats := renderer.RenderStats{
		Passes:       3,
		Workers:      2,
		TotalSamples: 300,
		Elapsed:      2 * time.Second,
		PerWorker: []renderer.WorkerStats{
			{ID: 0, Buckets: 2, Samples: 200, Busy: time.Second},
			{ID: 1, Buckets: 1, Samples: 100, Busy: time.Second},
		},
	}

	table := renderStatsTable(stats)
	for _, want := range []string{"Worker", "66.7 %", "33.3 %", "TOTAL", "2s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in table:\n%s", want, table)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames", "ball.png")
	args := []string{"raito", "render", "--scene", writeTestScene(t), "--width", "24", "--tile", "5", "--workers", "3", "--mode", "center", "-o", out}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	img, err := loaders.LoadImage(out)
	if err != nil {
		t.Fatalf("Failed to read rendered image: %v", err)
	}
	if img.Width != 24 || img.Height != 13 {
		t.Errorf("Expected 24x13 image, got %dx%d", img.Width, img.Height)
	}
	// The static red sphere covers the centre of the frame
	if c := img.GetPixelColor(12, 6); c.R < 0.99 || c.G > 0.01 || c.B > 0.01 {
		t.Errorf("Expected red centre pixel, got %v", c)
	}
}

func TestRenderCommand_BadMode(t *testing.T) {
	args := []string{"raito", "render", "--width", "8", "--mode", "spiral", "-o", filepath.Join(t.TempDir(), "x.png")}
	if err := newApp().Run(args); err == nil {
		t.Error("Expected error for unknown bucket mode")
	}
}

func TestScenesCommand(t *testing.T) {
	dir := filepath.Dir(writeTestScene(t))
	if err := newApp().Run([]string{"raito", "scenes", "--dir", dir}); err != nil {
		t.Errorf("scenes command failed: %v", err)
	}
}

func TestLogLevelFlag(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	dir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		expected    log.Level
		expectError bool
	}{
		{"default", []string{"raito", "scenes", "-d", dir}, log.Notice, false},
		{"verbose", []string{"raito", "-v", "scenes", "-d", dir}, log.Info, false},
		{"very verbose", []string{"raito", "-vv", "scenes", "-d", dir}, log.Debug, false},
		{"explicit level wins", []string{"raito", "-vv", "--log-level", "warning", "scenes", "-d", dir}, log.Warning, false},
		{"unknown level", []string{"raito", "--log-level", "loud", "scenes", "-d", dir}, log.Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetLevel(log.Notice)
			err := newApp().Run(tt.args)
			if (err != nil) != tt.expectError {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if log.GetLevel() != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, log.GetLevel())
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	if err := newApp().Run([]string{"raito", "--version"}); err != nil {
		t.Errorf("--version failed: %v", err)
	}
}
