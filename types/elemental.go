package types

import (
	"fmt"
	"math"
)

/*
EdgeKey is an always positive number that stores a segment's endpoints as indices in a way that can be compared
A segment between endpoints [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

/*
An EdgeInt stores a segment's endpoints in their original order, so that a directed segment can be
recovered together with its direction
*/
type EdgeInt int64

func NewEdgeInt(verts [2]int) (packed EdgeInt) {
	// This packs two index coordinates into two 31 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32 >> 1 // leaves room for the sign bit of an int64
		sign  bool
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into an int64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		sign = true
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeInt(i1 + i2<<32)
	if sign {
		packed = -packed
	}
	return
}

func (e EdgeInt) GetVertices() (verts [2]int) {
	var (
		eTmp EdgeInt
		sign bool
	)
	if e < 0 {
		sign = true
		e = -e
	}
	eTmp = e >> 32
	verts[1] = int(eTmp)
	verts[0] = int(e - eTmp*(1<<32))
	if sign {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (e EdgeInt) Reversed() EdgeInt {
	verts := e.GetVertices()
	return NewEdgeInt([2]int{verts[1], verts[0]})
}

func (e EdgeInt) GetKey() (ek EdgeKey) {
	ek = NewEdgeKey(e.GetVertices())
	return
}

type vertEdgeBucket struct {
	numberOfEdges int
	vertEdge      [2]EdgeInt
}

type bucketMap map[int]*vertEdgeBucket

func (bm bucketMap) AddEdge(e EdgeInt) {
	var (
		b  *vertEdgeBucket
		ok bool
	)
	verts := e.GetVertices()
	for i := 0; i < 2; i++ {
		if b, ok = bm[verts[i]]; !ok {
			bm[verts[i]] = &vertEdgeBucket{}
			b = bm[verts[i]]
		}
		if b.numberOfEdges == 2 {
			panic(fmt.Errorf("endpoint %d touches more than two segments", verts[i]))
		}
		b.vertEdge[b.numberOfEdges] = e
		b.numberOfEdges++
	}
}

type Curve []EdgeInt

func (c Curve) ReOrder(reverse bool) {
	/*
	   Orders a curve's line segments to form a connected curve

	   Each segment is re-oriented so that consecutive segments share their junction endpoint. An open
	   chain starts at the lowest numbered endpoint touching a single segment, a closed loop starts at
	   the first segment as stored. Optionally, reverses the order relative to the default ordering.

	   Panics when the segments do not form a single chain or loop.
	*/
	var (
		l = len(c)
	)
	if l < 2 {
		return
	}
	vb := make(bucketMap, l)
	for _, e := range c {
		vb.AddEdge(e)
	}
	start := -1
	for v, b := range vb {
		if b.numberOfEdges == 1 && (start == -1 || v < start) {
			start = v
		}
	}
	var cur EdgeInt
	if start == -1 { // closed loop, keep the stored starting segment
		cur = c[0]
		start = cur.GetVertices()[0]
	} else {
		cur = vb[start].vertEdge[0]
	}
	used := make(map[EdgeKey]bool, l)
	ordered := make(Curve, 0, l)
	v := start
	for {
		verts := cur.GetVertices()
		if verts[0] != v {
			cur = cur.Reversed()
			verts[0], verts[1] = verts[1], verts[0]
		}
		ordered = append(ordered, cur)
		used[cur.GetKey()] = true
		if len(ordered) == l {
			break
		}
		v = verts[1]
		b, ok := vb[v]
		if !ok {
			panic(fmt.Errorf("segments do not form a single connected curve, broken at endpoint %d", v))
		}
		next := b.vertEdge[0]
		if used[next.GetKey()] {
			if b.numberOfEdges < 2 || used[b.vertEdge[1].GetKey()] {
				panic(fmt.Errorf("segments do not form a single connected curve, broken at endpoint %d", v))
			}
			next = b.vertEdge[1]
		}
		cur = next
	}
	copy(c, ordered)
	if reverse {
		for i, j := 0, l-1; i < j; i, j = i+1, j-1 {
			c[i], c[j] = c[j], c[i]
		}
		for i, e := range c {
			c[i] = e.Reversed()
		}
	}
}

// Vertices returns the endpoint ids along an ordered curve, repeating the starting id at the end
// of a closed loop.
func (c Curve) Vertices() (verts []int) {
	if len(c) == 0 {
		return
	}
	verts = make([]int, 0, len(c)+1)
	for _, e := range c {
		verts = append(verts, e.GetVertices()[0])
	}
	verts = append(verts, c[len(c)-1].GetVertices()[1])
	return
}

// IsClosed reports whether an ordered curve returns to its starting endpoint.
func (c Curve) IsClosed() bool {
	if len(c) < 3 {
		return false
	}
	return c[0].GetVertices()[0] == c[len(c)-1].GetVertices()[1]
}
