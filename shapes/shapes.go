package shapes

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/notargets/gosweep/types"
)

/*
Analytic input fields for the distance solvers, built on the sdfx CAD kernel. Every
constructor centers its shape on the origin, sized by a single radius parameter r, so
that the centered grids place the interface well inside the domain.
*/

// New2D builds the planar shape named by the flag.
func New2D(sf types.ShapeFlag, r float64) (s sdf.SDF2, err error) {
	switch sf {
	case types.SHAPE_Circle:
		s, err = sdf.Circle2D(r)
	case types.SHAPE_Box:
		s, err = sdf.Box2D(v2.Vec{X: 2 * r, Y: 2 * r}, 0)
	case types.SHAPE_Annulus:
		s, err = annulus(r, r/2)
	case types.SHAPE_Dumbbell:
		s, err = dumbbell(r, 1.5*r)
	default:
		err = fmt.Errorf("no planar shape for flag %v", sf)
	}
	if err != nil {
		err = fmt.Errorf("unable to build shape %v with radius %v: %v", sf, r, err)
	}
	return
}

// New3D builds the volume shape named by the flag.
func New3D(sf types.ShapeFlag, r float64) (s sdf.SDF3, err error) {
	switch sf {
	case types.SHAPE_Sphere:
		s, err = sdf.Sphere3D(r)
	case types.SHAPE_Cube:
		s, err = sdf.Box3D(v3.Vec{X: 2 * r, Y: 2 * r, Z: 2 * r}, 0)
	default:
		err = fmt.Errorf("no volume shape for flag %v", sf)
	}
	if err != nil {
		err = fmt.Errorf("unable to build shape %v with radius %v: %v", sf, r, err)
	}
	return
}

// annulus is the ring between two concentric circles.
func annulus(rOuter, rInner float64) (s sdf.SDF2, err error) {
	var (
		outer, inner sdf.SDF2
	)
	if outer, err = sdf.Circle2D(rOuter); err != nil {
		return
	}
	if inner, err = sdf.Circle2D(rInner); err != nil {
		return
	}
	s = sdf.Difference2D(outer, inner)
	return
}

// dumbbell is the union of two circles with centers sep apart along the x axis. With
// sep < 2*r the circles overlap into the peanut shape that mean curvature flow pinches
// back into a single circle.
func dumbbell(r, sep float64) (s sdf.SDF2, err error) {
	var (
		c sdf.SDF2
	)
	if c, err = sdf.Circle2D(r); err != nil {
		return
	}
	left := sdf.Transform2D(c, sdf.Translate2d(v2.Vec{X: -sep / 2}))
	right := sdf.Transform2D(c, sdf.Translate2d(v2.Vec{X: sep / 2}))
	s = sdf.Union2D(left, right)
	return
}

/*
Exact reference distances. The sdfx evaluations above are exact for the primitive
shapes but only a bound near the composites' corner regions, so error reporting uses
these closed forms and only for the flags that have one.
*/

// Reference2D returns the exact signed distance function for the flag's shape, when a
// closed form exists.
func Reference2D(sf types.ShapeFlag, r float64) (f func(x, y float64) float64, ok bool) {
	switch sf {
	case types.SHAPE_Circle:
		f = func(x, y float64) float64 { return math.Hypot(x, y) - r }
		ok = true
	case types.SHAPE_Box:
		f = func(x, y float64) float64 { return boxDist(math.Abs(x)-r, math.Abs(y)-r) }
		ok = true
	}
	return
}

// Reference3D is the volume counterpart of Reference2D.
func Reference3D(sf types.ShapeFlag, r float64) (f func(x, y, z float64) float64, ok bool) {
	switch sf {
	case types.SHAPE_Sphere:
		f = func(x, y, z float64) float64 {
			return math.Sqrt(x*x+y*y+z*z) - r
		}
		ok = true
	case types.SHAPE_Cube:
		f = func(x, y, z float64) float64 {
			return cubeDist(math.Abs(x)-r, math.Abs(y)-r, math.Abs(z)-r)
		}
		ok = true
	}
	return
}

// boxDist is the exact signed distance for a centered box, qx and qy the per-axis
// distances past the half-widths.
func boxDist(qx, qy float64) float64 {
	if qx <= 0 && qy <= 0 {
		return math.Max(qx, qy)
	}
	return math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
}

func cubeDist(qx, qy, qz float64) float64 {
	if qx <= 0 && qy <= 0 && qz <= 0 {
		return math.Max(qx, math.Max(qy, qz))
	}
	qx, qy, qz = math.Max(qx, 0), math.Max(qy, 0), math.Max(qz, 0)
	return math.Sqrt(qx*qx + qy*qy + qz*qz)
}
