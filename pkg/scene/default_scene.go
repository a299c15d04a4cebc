package scene

import (
	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/shader"
)

// NewDefaultScene creates a single green sphere in front of the camera, lit by
// the sky and a small key light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("default", geometry.NewCamera(cameraConfig), DefaultSettings())

	green := shader.NewLambert(core.NewColor(0.2, 0.8, 0.2))
	s.AddShape(geometry.NewSphereObject("sphere", core.NewVec3(0, 0, -1), 0.5, green))

	key := shader.NewLight(core.White, 4.0)
	s.AddLight(geometry.NewSphereLight("key", core.NewVec3(2, 3, 0), 0.5, key))

	return s
}

// NewNormalsScene shows surface normals of a few spheres as colours
func NewNormalsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.5, 1.5),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        60.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	settings := DefaultSettings()
	settings.SamplesPerPixel = 4
	settings.MaxBounces = 1
	s := NewScene("normals", geometry.NewCamera(cameraConfig), settings)

	normals, _ := shader.NewDebugNormal("N")
	positions, _ := shader.NewDebugNormal("P")

	s.AddShape(geometry.NewSphereObject("left", core.NewVec3(-1.1, 0, -1), 0.5, normals))
	s.AddShape(geometry.NewSphereObject("center", core.NewVec3(0, 0, -1), 0.5, normals))
	s.AddShape(geometry.NewSphereObject("right", core.NewVec3(1.1, 0, -1), 0.5, positions))
	s.AddShape(geometry.NewSphereObject("ground", core.NewVec3(0, -100.5, -1), 100, normals))

	return s
}
