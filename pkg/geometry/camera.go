package geometry

import (
	"iter"
	"math"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/log"
)

var logger = log.New("camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Point3 // Camera position (look from)
	LookAt      core.Point3 // Point the camera is looking at
	Up          core.Vec3   // Up direction (usually (0,1,0))
	Width       int         // Image width in pixels, height is derived from the aspect ratio
	AspectRatio float64     // Aspect ratio (width/height)
	VFov        float64     // Vertical field of view in degrees
}

// DefaultCameraConfig returns a camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// MergeCameraConfig overrides the non-zero fields of base with those of override
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera maps raster pixels to world-space rays. It owns the pixel grid basis
// and is read-only once built.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center      core.Point3
	u, v, w     core.Vec3   // orthonormal basis, w points away from the view direction
	pixel00     core.Point3 // top-left corner of the viewport
	pixelDeltaU core.Vec3   // step between columns
	pixelDeltaV core.Vec3   // step between rows (downwards)
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	aspect := config.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	height := max(1, int(float64(width)/aspect))

	w, u := cameraBasis(config)
	v := w.Cross(u)

	focalLength := config.Center.Subtract(config.LookAt).Length()
	if focalLength == 0 {
		focalLength = 1
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2 * math.Tan(theta/2) * focalLength
	viewportWidth := viewportHeight * float64(width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	pixel00 := config.Center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	return &Camera{
		config:      config,
		width:       width,
		height:      height,
		center:      config.Center,
		u:           u,
		v:           v,
		w:           w,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}
}

// cameraBasis returns the backward and right axes of the camera. A camera
// looking at its own position looks down -z, and an up vector parallel to
// the view direction is replaced by the world axis least aligned with it.
func cameraBasis(config CameraConfig) (w, u core.Vec3) {
	w = config.Center.Subtract(config.LookAt)
	if w.NearZero() {
		logger.Warningf("camera at %v looks at itself, looking down -z", config.Center)
		w = core.NewVec3(0, 0, 1)
	}
	w = w.Normalize()

	u = config.Up.Cross(w)
	if u.NearZero() {
		up := core.NewVec3(0, 1, 0)
		if math.Abs(w.Y) > 0.9 {
			up = core.NewVec3(0, 0, -1)
		}
		logger.Warningf("camera up %v is parallel to the view direction, using %v", config.Up, up)
		u = up.Cross(w)
	}
	return w, u.Normalize()
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Center returns the camera position
func (c *Camera) Center() core.Point3 { return c.center }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// GetCameraRay returns the ray through pixel (x, y) offset by the sub-pixel
// fraction (px, py) in [0,1). Camera rays start at bounce 0.
func (c *Camera) GetCameraRay(x, y int, px, py float64) core.Ray {
	point := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x) + px)).
		Add(c.pixelDeltaV.Multiply(float64(y) + py))

	return core.Ray{
		Origin:    c.center,
		Direction: point.Subtract(c.center).Normalize(),
		Bounces:   0,
		X:         x,
		Y:         y,
	}
}

// CameraPixel is one element of the camera's pixel sequence
type CameraPixel struct {
	X, Y   int
	camera *Camera
}

// JitteredRay returns a ray through a random point of the pixel
func (p CameraPixel) JitteredRay(sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	return p.camera.GetCameraRay(p.X, p.Y, offset.X, offset.Y)
}

// CenterRay returns the ray through the middle of the pixel
func (p CameraPixel) CenterRay() core.Ray {
	return p.camera.GetCameraRay(p.X, p.Y, 0.5, 0.5)
}

// Pixels enumerates every pixel in raster order, row by row from the top.
// The sequence is lazy and can be ranged over any number of times.
func (c *Camera) Pixels() iter.Seq[CameraPixel] {
	return c.PixelsIn(0, 0, c.width, c.height)
}

// PixelsIn enumerates the pixels of a sub-rectangle in raster order
func (c *Camera) PixelsIn(left, top, width, height int) iter.Seq[CameraPixel] {
	return func(yield func(CameraPixel) bool) {
		for y := top; y < top+height; y++ {
			for x := left; x < left+width; x++ {
				if !yield(CameraPixel{X: x, Y: y, camera: c}) {
					return
				}
			}
		}
	}
}
