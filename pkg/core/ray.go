package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point3
	Direction Vec3
	Bounces   int // recursion depth, 0 for camera rays
	X, Y      int // raster coordinates of the pixel this ray tree belongs to
}

// NewRay creates a new camera-level ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Spawn creates a secondary ray one bounce deeper than r, keeping the pixel
// coordinates. The direction is normalized.
func (r Ray) Spawn(origin Point3, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Bounces:   r.Bounces + 1,
		X:         r.X,
		Y:         r.Y,
	}
}
