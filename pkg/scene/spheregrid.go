package scene

import (
	"fmt"
	"math"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/shader"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> cubed LMS
	lc := cube(l + 0.3963377774*a + 0.2158037573*b)
	mc := cube(l - 0.1055613458*a - 0.0638541728*b)
	sc := cube(l - 0.0894841775*a - 1.2914855480*b)

	return core.NewColor(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}

func cube(x float64) float64 {
	return x * x * x
}

// NewSphereGridScene creates a grid of metal spheres resting on a ground sphere.
// gridSize is clamped to [2, 30]; the grid always covers the same area.
func NewSphereGridScene(gridSize int, cameraOverrides ...geometry.CameraConfig) *Scene {
	gridSize = max(2, min(30, gridSize))

	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	settings := Settings{
		SamplesPerPixel: 32,
		MaxBounces:      12,
	}
	s := NewScene("spheregrid", geometry.NewCamera(cameraConfig), settings)

	// Sun-like light high to the side
	s.AddLight(geometry.NewSphereLight("sun", core.NewVec3(20, 25, 20), 8, shader.NewLight(core.NewColor(1.0, 0.96, 0.83), 12.0)))

	// Ground is a huge sphere whose top sits at y=0
	const groundRadius = 1000.0
	ground := shader.NewLambert(core.NewColor(0.5, 0.5, 0.5))
	s.AddShape(geometry.NewSphereObject("ground", core.NewVec3(4.5, -groundRadius, 4.5), groundRadius, ground))

	// Target area: roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue runs along X, chroma along Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := shader.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			id := fmt.Sprintf("sphere_%d_%d", i, j)
			s.AddShape(geometry.NewSphereObject(id, core.NewVec3(x, sphereRadius, z), sphereRadius, metal))
		}
	}

	return s
}
