package shader

import (
	"math"

	"github.com/df07/raito/pkg/core"
)

// Lambert represents a perfectly diffuse shader
type Lambert struct {
	Color   core.Color // Base reflectance
	Samples int        // Bounce rays per evaluation
	Uniform bool       // Sample the hemisphere uniformly instead of cosine-weighted
}

// NewLambert creates a lambert shader tracing one bounce ray per evaluation
func NewLambert(color core.Color) *Lambert {
	return &Lambert{Color: color, Samples: 1}
}

// NewLambertSamples creates a lambert shader averaging several bounce rays
func NewLambertSamples(color core.Color, samples int) *Lambert {
	return &Lambert{Color: color, Samples: max(1, samples)}
}

// NewLambertUniform creates a lambert shader drawing its bounce rays
// uniformly over the hemisphere
func NewLambertUniform(color core.Color, samples int) *Lambert {
	return &Lambert{Color: color, Samples: max(1, samples), Uniform: true}
}

// sampleDirection returns a bounce direction around n with its density
func (l *Lambert) sampleDirection(n core.Vec3, sample core.Vec2) (core.Vec3, float64) {
	if l.Uniform {
		return core.SampleUniformHemisphere(n, sample), 1 / (2 * math.Pi)
	}
	direction := core.SampleCosineHemisphere(n, sample)
	return direction, max(0, direction.Dot(n)) / math.Pi
}

// Evaluate implements core.Shader. Each bounce ray is tested against the
// scene lights and the scene shapes; the nearer of the two supplies the
// incoming light. Monte Carlo estimator: (BRDF * incoming * cosθ) / pdf with
// BRDF = color/π and pdf = cosθ/π, or 1/2π when sampling uniformly.
func (l *Lambert) Evaluate(tracer core.Tracer, sp core.ShadingPoint, sampler core.Sampler) core.Color {
	samples := max(1, l.Samples)
	brdf := l.Color.Scale(1.0 / math.Pi)
	origin := sp.P.Add(sp.N.Multiply(core.Epsilon))

	out := core.Color{A: 1}
	for i := 0; i < samples; i++ {
		direction, pdf := l.sampleDirection(sp.N, sampler.Get2D())
		cosine := max(0, direction.Dot(sp.N))
		if pdf <= 0 || cosine <= 0 {
			continue
		}

		ray := sp.Ray.Spawn(origin, direction)
		incoming, ok := l.incomingLight(tracer, ray, sampler)
		if !ok {
			continue
		}
		out = out.Add(brdf.Multiply(incoming).Scale(cosine / pdf))
	}

	return out.Scale(1.0 / float64(samples))
}

// incomingLight returns the colour arriving along ray, preferring a light hit
// when it is not hidden behind scene geometry.
func (l *Lambert) incomingLight(tracer core.Tracer, ray core.Ray, sampler core.Sampler) (core.Color, bool) {
	lightHit, lightOK := tracer.TraceToLights(ray, sampler)
	sceneHit, sceneOK := tracer.TraceRay(ray, sampler)

	switch {
	case lightOK && (!sceneOK || !sceneHit.IsObject):
		return lightHit.Color, true
	case lightOK && sceneOK:
		lightDist := lightHit.P.Subtract(ray.Origin).LengthSquared()
		sceneDist := sceneHit.P.Subtract(ray.Origin).LengthSquared()
		if lightDist <= sceneDist {
			return lightHit.Color, true
		}
		return sceneHit.Color, true
	case sceneOK:
		return sceneHit.Color, true
	}
	return core.Color{}, false
}
