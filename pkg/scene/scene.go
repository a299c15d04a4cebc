package scene

import (
	"errors"
	"fmt"

	"github.com/df07/raito/pkg/geometry"
)

var (
	// ErrEmptyScene is returned when a scene has nothing to render
	ErrEmptyScene = errors.New("scene has no camera")
	// ErrInvalidSettings is returned when render settings are out of range
	ErrInvalidSettings = errors.New("invalid scene settings")
)

// Settings contains the per-scene render parameters
type Settings struct {
	SamplesPerPixel int // Camera rays per pixel
	MaxBounces      int // Rays with this many bounces are not traced any further
}

// DefaultSettings returns the settings used by the built-in scenes
func DefaultSettings() Settings {
	return Settings{
		SamplesPerPixel: 16,
		MaxBounces:      8,
	}
}

// Scene contains all the elements needed for rendering. Shapes and lights are
// appended while the scene is built and read-only during a render.
type Scene struct {
	Name     string
	Settings Settings
	Camera   *geometry.Camera
	Shapes   []*geometry.Object // Objects hit by camera and bounce rays
	Lights   []*geometry.Object // Emitters, only found by light queries
}

// NewScene creates an empty scene viewed through the given camera
func NewScene(name string, camera *geometry.Camera, settings Settings) *Scene {
	return &Scene{
		Name:     name,
		Settings: settings,
		Camera:   camera,
		Shapes:   make([]*geometry.Object, 0),
		Lights:   make([]*geometry.Object, 0),
	}
}

// AddShape appends a renderable object
func (s *Scene) AddShape(obj *geometry.Object) {
	s.Shapes = append(s.Shapes, obj)
}

// AddLight appends an emitter
func (s *Scene) AddLight(obj *geometry.Object) {
	s.Lights = append(s.Lights, obj)
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes) + len(s.Lights)
}

// Validate checks that the scene can be handed to the renderer
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrEmptyScene
	}
	if s.Settings.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidSettings, s.Settings.SamplesPerPixel)
	}
	if s.Settings.MaxBounces < 0 {
		return fmt.Errorf("%w: max bounces must not be negative, got %d", ErrInvalidSettings, s.Settings.MaxBounces)
	}
	if err := validateObjects(s.Shapes); err != nil {
		return err
	}
	return validateObjects(s.Lights)
}

func validateObjects(objects []*geometry.Object) error {
	for i, obj := range objects {
		if obj == nil || obj.Shape == nil || obj.Shader == nil {
			return fmt.Errorf("%w: object %d has no shape or shader", ErrInvalidSettings, i)
		}
	}
	return nil
}
