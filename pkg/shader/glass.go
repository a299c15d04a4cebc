package shader

import (
	"errors"
	"math"

	"github.com/df07/raito/pkg/core"
)

// ErrInvalidIOR is returned for a non-positive index of refraction
var ErrInvalidIOR = errors.New("index of refraction must be positive")

// Glass represents a clear dielectric that both reflects and refracts
type Glass struct {
	IOR float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewGlass creates a new glass shader
func NewGlass(ior float64) (*Glass, error) {
	if ior <= 0 {
		return nil, ErrInvalidIOR
	}
	return &Glass{IOR: ior}, nil
}

// ScatterRay chooses between reflection and refraction at the shading point
// and returns the spawned ray. reflected reports which branch was taken.
func (g *Glass) ScatterRay(sp core.ShadingPoint, sampler core.Sampler) (ray core.Ray, reflected bool) {
	unitDirection := sp.Ray.Direction.Normalize()

	// Determine if we're entering or exiting the material
	frontFace := unitDirection.Dot(sp.N) < 0
	normal := sp.N
	refractionRatio := g.IOR
	if frontFace {
		refractionRatio = 1.0 / g.IOR
	} else {
		normal = normal.Negate()
	}

	cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(normal)
		reflected = true
	} else {
		direction = Refract(unitDirection, normal, refractionRatio)
	}

	// Offset along the new direction: refracted rays must start on the far side
	origin := sp.P.Add(direction.Multiply(core.Epsilon))
	return sp.Ray.Spawn(origin, direction), reflected
}

// Evaluate implements core.Shader. Glass does not tint.
func (g *Glass) Evaluate(tracer core.Tracer, sp core.ShadingPoint, sampler core.Sampler) core.Color {
	ray, _ := g.ScatterRay(sp, sampler)
	hit, ok := tracer.TraceRay(ray, sampler)
	if !ok {
		return core.Black
	}
	return hit.Color
}

// Refract bends the unit vector uv through a surface with normal n facing
// against uv, using Snell's law with ratio etaiOverEtat.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
