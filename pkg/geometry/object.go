package geometry

import (
	"github.com/df07/raito/pkg/core"
)

// Object types understood by the tracer
const (
	ObjectTypeGeometry = "geometry"
	ObjectTypeLight    = "light"
)

// Object is a named shape with an attached shader. Objects are immutable once
// the scene is handed to the renderer.
type Object struct {
	ID     string
	Type   string
	Shape  Shape
	Shader core.Shader
}

// NewObject creates an object of the given type
func NewObject(id, objectType string, shape Shape, shader core.Shader) *Object {
	return &Object{
		ID:     id,
		Type:   objectType,
		Shape:  shape,
		Shader: shader,
	}
}

// NewSphereObject creates a geometry object backed by a sphere
func NewSphereObject(id string, center core.Point3, radius float64, shader core.Shader) *Object {
	return NewObject(id, ObjectTypeGeometry, NewSphere(center, radius), shader)
}

// NewSphereLight creates a spherical emitter, found by TraceToLights
func NewSphereLight(id string, center core.Point3, radius float64, shader core.Shader) *Object {
	return NewObject(id, ObjectTypeLight, NewSphere(center, radius), shader)
}

// GetIdentifier returns the object name
func (o *Object) GetIdentifier() string {
	return o.ID
}

// GetType returns the object type tag
func (o *Object) GetType() string {
	return o.Type
}

// GetShader returns the attached shader
func (o *Object) GetShader() core.Shader {
	return o.Shader
}

// IsLight reports whether hits on this object count as light hits
func (o *Object) IsLight() bool {
	return o.Type == ObjectTypeLight
}

// GetIntersection delegates to the underlying shape
func (o *Object) GetIntersection(ray core.Ray) (Intersection, bool) {
	return o.Shape.GetIntersection(ray)
}

// GetNormal delegates to the underlying shape
func (o *Object) GetNormal(point core.Point3) core.Vec3 {
	return o.Shape.GetNormal(point)
}

// GetShadingPoint combines a raw intersection with the surface normal
func (o *Object) GetShadingPoint(ray core.Ray, hit Intersection) core.ShadingPoint {
	return core.ShadingPoint{
		P:        hit.Point,
		Ray:      ray,
		N:        o.GetNormal(hit.Point),
		Distance: hit.T,
		Bounces:  ray.Bounces,
		X:        ray.X,
		Y:        ray.Y,
		ObjectID: o.ID,
	}
}

// Intersect computes the intersection and, on a hit, the shading point
func (o *Object) Intersect(ray core.Ray) (core.ShadingPoint, bool) {
	hit, ok := o.GetIntersection(ray)
	if !ok {
		return core.ShadingPoint{}, false
	}
	return o.GetShadingPoint(ray, hit), true
}
