package types

import "strings"

//go:generate stringer -type=ShapeFlag

type ShapeFlag uint8

const (
	SHAPE_None ShapeFlag = iota
	SHAPE_Circle
	SHAPE_Box
	SHAPE_Annulus
	SHAPE_Dumbbell
	SHAPE_Sphere
	SHAPE_Cube
)

var ShapeNameMap = map[string]ShapeFlag{
	"circle":   SHAPE_Circle,
	"disc":     SHAPE_Circle,
	"box":      SHAPE_Box,
	"square":   SHAPE_Box,
	"annulus":  SHAPE_Annulus,
	"ring":     SHAPE_Annulus,
	"dumbbell": SHAPE_Dumbbell,
	"peanut":   SHAPE_Dumbbell,
	"sphere":   SHAPE_Sphere,
	"ball":     SHAPE_Sphere,
	"cube":     SHAPE_Cube,
}

func NewShapeFlag(label string) (sf ShapeFlag) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if sf, ok = ShapeNameMap[label]; !ok {
		sf = SHAPE_None
	}
	return
}

// Is3D reports whether the flag names a volume shape.
func (sf ShapeFlag) Is3D() bool {
	return sf == SHAPE_Sphere || sf == SHAPE_Cube
}
