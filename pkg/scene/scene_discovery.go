package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/raito/pkg/geometry"
)

// ErrUnknownScene is returned by Lookup for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene source types
const (
	SceneTypeBuiltin = "builtin"
	SceneTypeXML     = "xml"
)

// SceneInfo describes a scene that can be rendered
type SceneInfo struct {
	ID          string // Unique identifier, the name passed to Lookup for built-ins
	Name        string // Display name
	Description string
	Type        string // SceneTypeBuiltin or SceneTypeXML
	FilePath    string // Path to the scene description (xml type only)
}

type builtinScene struct {
	info  SceneInfo
	build func(overrides ...geometry.CameraConfig) *Scene
}

var builtins = []builtinScene{
	{
		info:  SceneInfo{ID: "default", Name: "Default Scene", Description: "Green lambert sphere under the sky"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "materials", Name: "Materials", Description: "Lambert, metal and glass spheres on a ground sphere"},
		build: NewMaterialsScene,
	},
	{
		info:  SceneInfo{ID: "normals", Name: "Normals", Description: "Surface normals and positions as colours"},
		build: NewNormalsScene,
	},
	{
		info: SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "10x10 grid of rainbow-coloured metal spheres"},
		build: func(overrides ...geometry.CameraConfig) *Scene {
			return NewSphereGridScene(10, overrides...)
		},
	},
}

// Names returns the identifiers of the built-in scenes in registry order
func Names() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.info.ID
	}
	return names
}

// Lookup builds the named built-in scene
func Lookup(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}

// ListBuiltinScenes returns the metadata of every built-in scene
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtins))
	for i, b := range builtins {
		scenes[i] = b.info
		scenes[i].Type = SceneTypeBuiltin
	}
	return scenes
}

// ListXMLScenes scans dir for .xml scene descriptions. A missing directory
// yields an empty list.
func ListXMLScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseXMLMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseXMLMetadata reads "Scene:" and "Description:" entries from the
// comment lines at the top of an XML scene file, e.g.
//
//	<!-- Scene: Three Spheres -->
//	<!-- Description: glass, metal and lambert -->
func ParseXMLMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       "xml:" + base,
		Name:     titleCase(base),
		Type:     SceneTypeXML,
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "<?xml") {
			continue
		}
		if !strings.HasPrefix(line, "<!--") {
			break
		}

		content := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "<!--"), "-->"))
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(v)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the XML scenes in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	xmlScenes, err := ListXMLScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(ListBuiltinScenes(), xmlScenes...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
