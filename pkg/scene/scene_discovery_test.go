package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/raito/pkg/geometry"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"glass_ball", "Glass Ball"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLookup_BuiltinScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q does not validate: %v", name, err)
			}
			if len(s.Shapes) == 0 {
				t.Errorf("Built-in scene %q has no shapes", name)
			}
		})
	}
}

func TestLookup_CameraOverride(t *testing.T) {
	s, err := Lookup("default", geometry.CameraConfig{Width: 64, AspectRatio: 2})
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if s.Camera.Width() != 64 || s.Camera.Height() != 32 {
		t.Errorf("Expected 64x32 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestParseXMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		wantName string
		wantDesc string
		wantID   string
	}{
		{
			name: "complete.xml",
			content: `<?xml version="1.0"?>
<!-- Scene: Three Spheres -->
<!-- Description: glass, metal and lambert -->
<scene></scene>`,
			wantName: "Three Spheres",
			wantDesc: "glass, metal and lambert",
			wantID:   "xml:complete",
		},
		{
			name:     "no-metadata.xml",
			content:  `<scene><!-- Scene: ignored --></scene>`,
			wantName: "No Metadata",
			wantID:   "xml:no-metadata",
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write scene file: %v", err)
			}

			info, err := ParseXMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseXMLMetadata() error: %v", err)
			}
			if info.ID != tc.wantID {
				t.Errorf("ID = %q, want %q", info.ID, tc.wantID)
			}
			if info.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", info.Name, tc.wantName)
			}
			if info.Description != tc.wantDesc {
				t.Errorf("Description = %q, want %q", info.Description, tc.wantDesc)
			}
			if info.Type != SceneTypeXML || info.FilePath != path {
				t.Errorf("Unexpected type/path %q %q", info.Type, info.FilePath)
			}
		})
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.xml"), []byte("<scene/>"), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(scenes) != len(Names())+1 {
		t.Fatalf("Expected %d scenes, got %d", len(Names())+1, len(scenes))
	}
	for i, name := range Names() {
		if scenes[i].ID != name || scenes[i].Type != SceneTypeBuiltin {
			t.Errorf("Scene %d: expected builtin %q, got %+v", i, name, scenes[i])
		}
	}
	if last := scenes[len(scenes)-1]; last.ID != "xml:extra" {
		t.Errorf("Expected xml scene last, got %+v", last)
	}
}

func TestListXMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListXMLScenes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListXMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty slice, got %v", scenes)
	}
}
