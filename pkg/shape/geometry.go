package shape

import (
	"image"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ring converts the contour to a closed orb ring (first point repeated at the end).
func ring(c Contour) orb.Ring {
	if len(c) == 0 {
		return nil
	}
	var r = make(orb.Ring, 0, len(c)+1)
	for _, p := range c {
		r = append(r, orb.Point{float64(p.X), float64(p.Y)})
	}
	return append(r, r[0])
}

// Area is the absolute shoelace area of the closed contour.
func Area(c Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	return math.Abs(planar.Area(ring(c)))
}

// Perimeter is the length of the closed contour, closing edge included.
func Perimeter(c Contour) float64 {
	if len(c) < 2 {
		return 0
	}
	return planar.Length(ring(c))
}

// BoundingRect is the smallest upright pixel rectangle containing every point.
func BoundingRect(c Contour) image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	var b = ring(c).Bound()
	return image.Rect(
		int(b.Min[0]), int(b.Min[1]),
		int(b.Max[0])+1, int(b.Max[1])+1)
}
