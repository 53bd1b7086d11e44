package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Interpolator places the new point Subdivide inserts on the edge (a, b).
type Interpolator func(a, b r3.Vec) r3.Vec

// Linear places the point at the edge midpoint.
func Linear(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Lerp returns an Interpolator placing the point at a + t·(b − a).
func Lerp(t float64) Interpolator {
	return func(a, b r3.Vec) r3.Vec {
		return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
	}
}

// Normalized places the point at the midpoint pushed onto the unit sphere
// around the origin. Subdividing an Icosahedron with it yields geodesic spheres.
func Normalized(a, b r3.Vec) r3.Vec {
	return unit(Linear(a, b))
}

// OnSphere returns an Interpolator projecting the midpoint onto the sphere of
// the given center and radius.
func OnSphere(center r3.Vec, radius float64) Interpolator {
	return func(a, b r3.Vec) r3.Vec {
		dir := unit(r3.Sub(Linear(a, b), center))
		return r3.Add(center, r3.Scale(radius, dir))
	}
}

// unit returns v scaled to length 1, or the zero vector for a zero v.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}
