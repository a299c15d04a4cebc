package tracer

import (
	"math"

	"github.com/df07/raito/pkg/core"
	"github.com/df07/raito/pkg/geometry"
	"github.com/df07/raito/pkg/scene"
)

// SkyColor returns the background seen along a direction: white at the nadir
// blending to sky blue at the zenith
func SkyColor(direction core.Vec3) core.Color {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return core.White.Lerp(core.SkyBlue, t)
}

// nearestHit runs a linear scan over objects and returns the closest
// intersection in front of the ray origin
func nearestHit(objects []*geometry.Object, ray core.Ray) (*geometry.Object, geometry.Intersection, bool) {
	var (
		closest    *geometry.Object
		closestHit geometry.Intersection
	)
	minT := math.NaN()

	for _, obj := range objects {
		hit, ok := obj.GetIntersection(ray)
		if !ok {
			continue
		}
		// NaN compares false, so the first hit always wins
		if math.IsNaN(minT) || hit.T < minT {
			minT = hit.T
			closest = obj
			closestHit = hit
		}
	}

	return closest, closestHit, closest != nil
}

// TraceRay finds the nearest shape along ray and evaluates its shader. When
// nothing is hit the sky colour is returned with IsObject unset. Rays that
// already bounced MaxBounces times are refused.
func TraceRay(s *scene.Scene, ray core.Ray, sampler core.Sampler) (core.Hit, bool) {
	if ray.Bounces >= s.Settings.MaxBounces {
		return core.Hit{}, false
	}

	obj, hit, ok := nearestHit(s.Shapes, ray)
	if !ok {
		return core.Hit{Color: SkyColor(ray.Direction), IsObject: false}, true
	}

	sp := obj.GetShadingPoint(ray, hit)
	color := obj.GetShader().Evaluate(Tracer{Scene: s}, sp, sampler)
	return core.Hit{Color: color, P: hit.Point, IsObject: true}, true
}

// TraceToLights finds the nearest light along ray. Any object in the light
// list that is not of light type occludes the lights behind it.
func TraceToLights(s *scene.Scene, ray core.Ray, sampler core.Sampler) (core.Hit, bool) {
	if ray.Bounces >= s.Settings.MaxBounces {
		return core.Hit{}, false
	}

	obj, hit, ok := nearestHit(s.Lights, ray)
	if !ok || !obj.IsLight() {
		return core.Hit{}, false
	}

	sp := obj.GetShadingPoint(ray, hit)
	color := obj.GetShader().Evaluate(Tracer{Scene: s}, sp, sampler)
	return core.Hit{Color: color, P: hit.Point, IsObject: true}, true
}

// Tracer binds a scene so shaders can trace secondary rays
type Tracer struct {
	Scene *scene.Scene
}

// New creates a tracer for the scene
func New(s *scene.Scene) Tracer {
	return Tracer{Scene: s}
}

// TraceRay implements core.Tracer
func (t Tracer) TraceRay(ray core.Ray, sampler core.Sampler) (core.Hit, bool) {
	return TraceRay(t.Scene, ray, sampler)
}

// TraceToLights implements core.Tracer
func (t Tracer) TraceToLights(ray core.Ray, sampler core.Sampler) (core.Hit, bool) {
	return TraceToLights(t.Scene, ray, sampler)
}
