package core

// ShadingPoint is built once per successful intersection and handed to the
// hit object's shader.
type ShadingPoint struct {
	P        Point3  // hit position in world space
	Ray      Ray     // incoming ray
	N        Vec3    // unit surface normal, outward facing
	Distance float64 // ray parameter of the hit, always >= 0
	Bounces  int     // recursion depth of the incoming ray
	X, Y     int     // raster coordinates of the ray tree
	ObjectID string  // identifier of the object being shaded
}

// Hit is the outcome of tracing a ray
type Hit struct {
	Color    Color
	P        Point3
	IsObject bool // false for the sky fallback
}

// Tracer traces secondary rays on behalf of shaders. Both methods return
// false when the ray is refused (bounce limit) or nothing usable was found.
type Tracer interface {
	TraceRay(ray Ray, sampler Sampler) (Hit, bool)
	TraceToLights(ray Ray, sampler Sampler) (Hit, bool)
}

// Shader computes the colour leaving a shading point. Shaders are shared
// read-only between render workers; all randomness comes from sampler.
type Shader interface {
	Evaluate(tracer Tracer, sp ShadingPoint, sampler Sampler) Color
}
