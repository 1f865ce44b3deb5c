package shape

import (
	"fmt"
	"image"
)

// Point is a boundary pixel of a segmented object.
type Point struct {
	X, Y int
}

// Contour is an ordered closed polygon. The last point connects back to the first.
type Contour []Point

// IsDegenerate reports whether the contour has no usable outline:
// fewer than 2 points or zero perimeter.
func (c Contour) IsDegenerate() bool {
	return len(c) < 2 || Perimeter(c) == 0
}

// Object is a segmented shape as produced by the detection stage.
type Object struct {
	contour   Contour
	boundRect image.Rectangle
	area      float64
}

func NewObject(contour Contour) Object {
	return Object{
		contour:   contour,
		boundRect: BoundingRect(contour),
		area:      Area(contour),
	}
}

func (o Object) Contour() Contour {
	return o.contour
}

func (o Object) BoundingRect() image.Rectangle {
	return o.boundRect
}

func (o Object) Area() float64 {
	return o.area
}

func (o Object) String() string {
	return fmt.Sprintf("BB: [%v, %v] Area: %v",
		o.boundRect.Dx(), o.boundRect.Dy(), o.area)
}

// Largest returns the object with the greatest contour area.
func Largest(objects []Object) (Object, bool) {
	if len(objects) == 0 {
		return Object{}, false
	}
	var best = 0
	for i := 1; i < len(objects); i++ {
		if objects[i].area > objects[best].area {
			best = i
		}
	}
	return objects[best], true
}
