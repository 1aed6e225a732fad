package geometry2D

import (
	"math"
)

type BoundingBox struct {
	XMin [2]float32
	XMax [2]float32
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin[0], Box.XMin[1] = Geometry[0].X[0], Geometry[0].X[1]
	Box.XMax[0], Box.XMax[1] = Geometry[0].X[0], Geometry[0].X[1]
	for _, point := range Geometry {
		for i := 0; i < 2; i++ {
			if point.X[i] < Box.XMin[i] {
				Box.XMin[i] = point.X[i]
			}
			if point.X[i] > Box.XMax[i] {
				Box.XMax[i] = point.X[i]
			}
		}
	}
	return Box
}

func (bb *BoundingBox) Centroid() (centroid *Point) {
	centroid = new(Point)
	for i := 0; i < 2; i++ {
		centroid.X[i] = 0.5 * (bb.XMax[i] + bb.XMin[i])
	}
	return
}

func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 2; i++ {
		if newBB.XMin[i] < bb.XMin[i] {
			bb.XMin[i] = newBB.XMin[i]
		}
		if newBB.XMax[i] > bb.XMax[i] {
			bb.XMax[i] = newBB.XMax[i]
		}
	}
}

func (bb *BoundingBox) PointInside(point *Point) (within bool) {
	for ii := 0; ii < 2; ii++ {
		if point.X[ii] > bb.XMax[ii] || point.X[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

type GeometryInterface interface {
	GetGeometry() []Point
	SetGeometry([]Point) // Allows for external transformations
	GetBoundingBox() *BoundingBox
	Area() float64
	Centroid() *Point
}

type BaseGeometryClass struct {
	Box      *BoundingBox
	Geometry []Point
}

func (bg *BaseGeometryClass) GetGeometry() (geom []Point) {
	return bg.Geometry
}
func (bg *BaseGeometryClass) SetGeometry(geom []Point) {
	bg.Geometry = geom
	bg.Box = NewBoundingBox(geom)
}
func (bg *BaseGeometryClass) GetBoundingBox() (bb *BoundingBox) {
	return bg.Box
}
func (bg *BaseGeometryClass) Area() (area float64)  { return 0 }
func (bg *BaseGeometryClass) Centroid() (ct *Point) { return bg.Box.Centroid() }

type Point struct {
	X [2]float32
}

func NewPoint(x, y float32) *Point {
	a := new(Point)
	a.X = [2]float32{x, y}
	return a
}

func (pt *Point) Plus(rhs *Point) (res *Point) {
	return &Point{X: [2]float32{
		pt.X[0] + rhs.X[0],
		pt.X[1] + rhs.X[1],
	}}
}
func (pt *Point) Equal(rhs Point) bool {
	return pt.X[0] == rhs.X[0] && pt.X[1] == rhs.X[1]
}

type PolyLine struct {
	BaseGeometryClass
}

func NewPolyLine(geom []Point) (pl *PolyLine) {
	p_pl := new(PolyLine)
	p_pl.Box = NewBoundingBox(geom)
	p_pl.Geometry = geom
	return p_pl
}

// Arrays splits the polyline into per axis coordinate slices for charting.
func (pl *PolyLine) Arrays() (x, y []float64) {
	x = make([]float64, len(pl.Geometry))
	y = make([]float64, len(pl.Geometry))
	for i, p := range pl.Geometry {
		x[i] = float64(p.X[0])
		y[i] = float64(p.X[1])
	}
	return
}

// IsClosed reports whether the polyline returns to its starting point.
func (pl *PolyLine) IsClosed() bool {
	var (
		l = len(pl.Geometry)
	)
	if l < 4 {
		return false
	}
	return pl.Geometry[l-1].Equal(pl.Geometry[0])
}

type Polygon struct {
	BaseGeometryClass
}

func NewPolygon(geom []Point) (poly *Polygon) {
	/*
		Close off the polygon if needed
	*/
	if !geom[len(geom)-1].Equal(geom[0]) {
		geom = append(geom, geom[0])
	}
	pPoly := new(Polygon)
	pPoly.Box = NewBoundingBox(geom)
	pPoly.Geometry = geom
	return pPoly
}
func NewNgon(centroid Point, radius float64, n int) (poly *Polygon) {
	nF := float64(n)
	angleInc := 2 * math.Pi / nF
	var geom []Point
	for i := 0; i < n; i++ {
		angle := 2*math.Pi - float64(i)*angleInc // Generate in counterclockwise order for positive normal
		geom = append(geom,
			*centroid.Plus(&Point{X: [2]float32{
				float32(math.Sin(angle) * radius),
				float32(math.Cos(angle) * radius),
			}}))
	}
	return NewPolygon(geom)
}

func (pg *Polygon) Centroid() (centroid *Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	centroid = &Point{X: [2]float32{0, 0}}
	area := pg.Area()
	ct := [2]float64{0, 0}
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0 := pg.Geometry[i]
		pt1 := pg.Geometry[i+1]
		x0, y0 := float64(pt0.X[0]), float64(pt0.X[1])
		x1, y1 := float64(pt1.X[0]), float64(pt1.X[1])
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	for i := 0; i < 2; i++ {
		centroid.X[i] = float32(ct[i] / (6 * area))
	}
	return centroid
}
func (pg *Polygon) Area() (area float64) {
	/*
		Algorithm: Green's theorem in the plane
	*/
	var a64 float64
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0 := pg.Geometry[i]
		pt1 := pg.Geometry[i+1]
		x0, y0 := float64(pt0.X[0]), float64(pt0.X[1])
		x1, y1 := float64(pt1.X[0]), float64(pt1.X[1])
		a64 += x0*y1 - x1*y0
	}
	return 0.5 * a64
}

func (pg *Polygon) PointInside(point Point) (inside bool) {
	if !pg.Box.PointInside(&point) {
		return false
	}
	/*
		Algorithm:
		Winding Number from http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly()
		if wn = 0, the point is outside
	*/

	/*
		isLeft(): tests if a point is Left|On|Right of an infinite line.
		Input:  three points P0, P1, and P2
		Return:
			>0 for P2 left of the line through P0 and P1
			=0 for P2  on the line
			<0 for P2  right of the line
		See: Algorithm 1 "Area of Triangles and Polygons"
	*/
	isLeft := func(P0, P1, P2 Point) float32 {
		return (P1.X[0]-P0.X[0])*(P2.X[1]-P0.X[1]) -
			(P2.X[0]-P0.X[0])*(P1.X[1]-P0.X[1])
	}

	var wn int
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0 := pg.Geometry[i]
		pt1 := pg.Geometry[i+1]
		if pt0.X[1] <= point.X[1] {
			if pt1.X[1] > point.X[1] {
				if isLeft(pt0, pt1, point) > 0 {
					wn++
				}
			}
		} else {
			if pt1.X[1] <= point.X[1] {
				if isLeft(pt0, pt1, point) < 0 {
					wn--
				}
			}
		}
	}
	return wn != 0
}
