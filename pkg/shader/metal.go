package shader

import (
	"github.com/df07/raito/pkg/core"
)

// Metal represents a metallic shader with glossy reflection
type Metal struct {
	Color    core.Color // Metal tint
	Fuzzness float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal shader
func NewMetal(color core.Color, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Color: color, Fuzzness: fuzzness}
}

// ScatterRay builds the reflected ray leaving the shading point
func (m *Metal) ScatterRay(sp core.ShadingPoint, sampler core.Sampler) core.Ray {
	reflected := sp.Ray.Direction.Normalize().Reflect(sp.N)

	// Add fuzziness by perturbing the reflection direction. A perturbation
	// that cancels the reflection leaves the mirror direction.
	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		if fuzzed := reflected.Add(perturbation); !fuzzed.NearZero() {
			reflected = fuzzed
		}
	}

	origin := sp.P.Add(sp.N.Multiply(core.Epsilon))
	return sp.Ray.Spawn(origin, reflected)
}

// Evaluate implements core.Shader. A reflected ray that finds nothing
// contributes black.
func (m *Metal) Evaluate(tracer core.Tracer, sp core.ShadingPoint, sampler core.Sampler) core.Color {
	hit, ok := tracer.TraceRay(m.ScatterRay(sp, sampler), sampler)
	if !ok {
		return core.Black
	}
	return m.Color.Multiply(hit.Color)
}
