package geometry2D

import (
	"fmt"

	"github.com/james-bowman/sparse"
	graphics2D "github.com/notargets/avs/geometry"
	"github.com/notargets/gosweep/grid"
	"github.com/notargets/gosweep/types"
)

/*
Zero contour extraction over a regular grid using marching squares. Each cell's corner
signs select which cell edges the interface crosses, crossings are placed by linear
interpolation along their grid edge, and the resulting segment soup is chained into
polylines through a segment endpoint incidence product.
*/

// ZeroContour extracts the zero level set of the field u on g as chained polylines, one
// per connected interface component. Nodes with u > 0 count as outside, so a field of
// uniform sign yields no contours.
func ZeroContour(u []float64, g grid.Grid2D) (contours []*PolyLine) {
	var (
		nx = g.Nx
	)
	if g.NumNodes() != len(u) {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(u) = %v\n",
			g.Nx, g.Ny, len(u)))
	}
	/*
		Crossing points are identified by the grid edge they sit on, packed into an
		EdgeKey from the edge's two node indices, so that the two cells sharing a grid
		edge agree on the crossing without any coordinate quantization.
	*/
	var (
		ids  = make(map[types.EdgeKey]int)
		pts  []Point
		segs []types.EdgeInt
	)
	crossing := func(s0, s1, i1, j1 int) int {
		key := types.NewEdgeKey([2]int{s0, s1})
		if id, ok := ids[key]; ok {
			return id
		}
		t := u[s0] / (u[s0] - u[s1])
		x0, y0 := g.Coord(s0%nx, s0/nx)
		x1, y1 := g.Coord(i1, j1)
		id := len(pts)
		pts = append(pts, Point{X: [2]float32{
			float32(x0 + t*(x1-x0)),
			float32(y0 + t*(y1-y0)),
		}})
		ids[key] = id
		return id
	}
	emit := func(p0, p1 int) {
		segs = append(segs, types.NewEdgeInt([2]int{p0, p1}))
	}
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			var (
				s    = j*nx + i
				mask int
			)
			if u[s] > 0 {
				mask |= 1
			}
			if u[s+1] > 0 {
				mask |= 2
			}
			if u[s+nx] > 0 {
				mask |= 4
			}
			if u[s+nx+1] > 0 {
				mask |= 8
			}
			if mask == 0 || mask == 0xF {
				continue
			}
			left := func() int { return crossing(s, s+nx, i, j+1) }
			bottom := func() int { return crossing(s, s+1, i+1, j) }
			right := func() int { return crossing(s+1, s+nx+1, i+1, j+1) }
			top := func() int { return crossing(s+nx, s+nx+1, i+1, j+1) }
			switch mask {
			case 0x1:
				emit(left(), bottom())
			case 0x2:
				emit(bottom(), right())
			case 0x3:
				emit(left(), right())
			case 0x4:
				emit(top(), left())
			case 0x5:
				emit(top(), bottom())
			case 0x6:
				emit(bottom(), right())
				emit(top(), left())
			case 0x7:
				emit(top(), right())
			case 0x8:
				emit(right(), top())
			case 0x9:
				emit(left(), bottom())
				emit(right(), top())
			case 0xA:
				emit(bottom(), top())
			case 0xB:
				emit(left(), top())
			case 0xC:
				emit(right(), left())
			case 0xD:
				emit(right(), bottom())
			case 0xE:
				emit(bottom(), left())
			}
		}
	}
	for _, c := range chainSegments(segs, len(pts)) {
		verts := c.Vertices()
		geom := make([]Point, len(verts))
		for m, id := range verts {
			geom[m] = pts[id]
		}
		contours = append(contours, NewPolyLine(geom))
	}
	return
}

// chainSegments splits a segment soup into connected components and orders each one.
// The segment to segment adjacency comes from multiplying the segment/endpoint
// incidence matrix with its transpose, entries of 1 off the diagonal marking pairs
// that share an endpoint.
func chainSegments(segs []types.EdgeInt, nVerts int) (curves []types.Curve) {
	var (
		nSegs = len(segs)
	)
	if nSegs == 0 {
		return
	}
	SpSToV := sparse.NewDOK(nSegs, nVerts)
	for m, e := range segs {
		verts := e.GetVertices()
		SpSToV.Set(m, verts[0], 1)
		SpSToV.Set(m, verts[1], 1)
	}
	SpSToS := sparse.NewCSR(nSegs, nSegs, nil, nil, nil)
	SV := SpSToV.ToCSR()
	SpSToS.Mul(SV, SV.T())
	adj := make([][]int, nSegs)
	SpSToS.DoNonZero(func(i, j int, v float64) {
		if i != j && v == 1 {
			adj[i] = append(adj[i], j)
		}
	})
	visited := make([]bool, nSegs)
	for m0 := 0; m0 < nSegs; m0++ {
		if visited[m0] {
			continue
		}
		var (
			comp  types.Curve
			queue = []int{m0}
		)
		visited[m0] = true
		for len(queue) > 0 {
			m := queue[0]
			queue = queue[1:]
			comp = append(comp, segs[m])
			for _, mm := range adj[m] {
				if !visited[mm] {
					visited[mm] = true
					queue = append(queue, mm)
				}
			}
		}
		comp.ReOrder(false)
		curves = append(curves, comp)
	}
	return
}

// GridMesh builds the two triangle per cell mesh of the grid, the same decomposition
// the local distance initializer integrates over, in the graphics form the avs chart
// consumes for surface plots.
func GridMesh(g grid.Grid2D) (tm *graphics2D.TriMesh) {
	var (
		nx, ny = g.Nx, g.Ny
	)
	pts := make([]graphics2D.Point, g.NumNodes())
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x, y := g.Coord(i, j)
			pts[j*nx+i].X[0] = float32(x)
			pts[j*nx+i].X[1] = float32(y)
		}
	}
	tris := make([]graphics2D.Triangle, 0, 2*(nx-1)*(ny-1))
	for j := 1; j < ny; j++ {
		for i := 1; i < nx; i++ {
			s := j*nx + i
			tris = append(tris,
				graphics2D.Triangle{Nodes: [3]int32{int32(s - nx - 1), int32(s - nx), int32(s - 1)}},
				graphics2D.Triangle{Nodes: [3]int32{int32(s), int32(s - nx), int32(s - 1)}})
		}
	}
	tm = &graphics2D.TriMesh{
		BaseGeometryClass: graphics2D.BaseGeometryClass{
			Geometry: pts,
		},
		Triangles:  tris,
		Attributes: nil,
	}
	return
}
