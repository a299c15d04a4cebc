package geometry

import "github.com/df07/raito/pkg/core"

// Intersection is a raw ray/shape hit before any shading data is built
type Intersection struct {
	T     float64     // ray parameter, always >= 0
	Point core.Point3 // ray.At(T)
}

// Shape interface for geometry that can be hit by rays
type Shape interface {
	GetIntersection(ray core.Ray) (Intersection, bool)
	GetNormal(point core.Point3) core.Vec3
}
