package geometry

import (
	"math"

	"github.com/df07/raito/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// GetIntersection solves |O + tD - C|² = r² for the smallest non-negative t.
// A ray starting inside the sphere gets the far root; a sphere entirely
// behind the origin is a miss.
func (s *Sphere) GetIntersection(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	near := (-b - sqrtD) / (2 * a)
	far := (-b + sqrtD) / (2 * a)

	root := near
	if root < 0 {
		root = far
		if root < 0 {
			return Intersection{}, false
		}
	}

	return Intersection{T: root, Point: ray.At(root)}, true
}

// GetNormal returns the outward unit normal at a point on the surface
func (s *Sphere) GetNormal(point core.Point3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
