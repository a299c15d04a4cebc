package scene

import (
	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/shader"
)

// NewMaterialsScene lines up one sphere per surface type on a large ground sphere
func NewMaterialsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.25, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	settings := Settings{
		SamplesPerPixel: 64,
		MaxBounces:      10,
	}
	s := NewScene("materials", geometry.NewCamera(cameraConfig), settings)

	ground := shader.NewLambert(core.NewColor(0.5, 0.5, 0.5))
	diffuse := shader.NewLambertSamples(core.NewColor(0.65, 0.25, 0.2), 2)
	silver := shader.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	gold := shader.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	glass, _ := shader.NewGlass(1.5)

	s.AddShape(geometry.NewSphereObject("ground", core.NewVec3(0, -100.5, -1), 100, ground))
	s.AddShape(geometry.NewSphereObject("lambert", core.NewVec3(0, 0, -1.2), 0.5, diffuse))
	s.AddShape(geometry.NewSphereObject("glass", core.NewVec3(-1, 0, -1), 0.5, glass))
	s.AddShape(geometry.NewSphereObject("silver", core.NewVec3(1, 0, -1), 0.5, silver))
	s.AddShape(geometry.NewSphereObject("gold", core.NewVec3(0.45, -0.35, -0.4), 0.15, gold))

	// Warm key light above and to the right
	s.AddLight(geometry.NewSphereLight("sun", core.NewVec3(3, 4, 1), 1.0, shader.NewLight(core.NewColor(1.0, 0.95, 0.85), 6.0)))

	return s
}
