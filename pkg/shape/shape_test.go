package shape

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

func TestEncode(t *testing.T) {
	var origin = Point{5, 5}
	var tests = []struct {
		name string
		to   Point
		code int
	}{
		{"north", Point{5, 4}, North},
		{"north-east", Point{6, 4}, NorthEast},
		{"east", Point{6, 5}, East},
		{"south-east", Point{6, 6}, SouthEast},
		{"south", Point{5, 6}, South},
		{"south-west", Point{4, 6}, SouthWest},
		{"west", Point{4, 5}, West},
		{"north-west", Point{4, 4}, NorthWest},
		{"same point", Point{5, 5}, NorthWest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.code, Encode(origin, test.to))
		})
	}
}

func TestChainCodeWrapsAround(t *testing.T) {
	assert.Equal(t, []int{South, East, North, West}, ChainCode(square))
	assert.Equal(t, []int{NorthWest}, ChainCode(Contour{{3, 3}}))
	assert.Nil(t, ChainCode(nil))
}

func TestSquareGeometry(t *testing.T) {
	assert.InDelta(t, 100.0, Area(square), 1e-9)
	assert.InDelta(t, 40.0, Perimeter(square), 1e-9)
	assert.Equal(t, image.Rect(0, 0, 11, 11), BoundingRect(square))

	var major, minor = MinAreaRect(square)
	assert.InDelta(t, 10.0, major, 1e-9)
	assert.InDelta(t, 10.0, minor, 1e-9)
}

func TestAreaIgnoresWinding(t *testing.T) {
	var reversed = Contour{{10, 0}, {10, 10}, {0, 10}, {0, 0}}
	assert.InDelta(t, Area(square), Area(reversed), 1e-9)
}

func TestConvexHull(t *testing.T) {
	// square with a notch and a point on an edge
	var c = Contour{{0, 0}, {0, 10}, {5, 10}, {10, 10}, {10, 0}, {5, 5}}
	var hull = ConvexHull(c)
	require.Len(t, hull, 4)
	assert.ElementsMatch(t, square, hull)
	assert.InDelta(t, 100.0, Area(hull), 1e-9)
	assert.Less(t, Area(c), Area(hull))
}

func TestConvexHullCollinear(t *testing.T) {
	var hull = ConvexHull(Contour{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	assert.Equal(t, Contour{{0, 0}, {3, 3}}, hull)
}

func TestMinAreaRectRotated(t *testing.T) {
	// 4x2 rectangle rotated by 45 degrees
	var c = Contour{{0, 2}, {2, 0}, {6, 4}, {4, 6}}
	var major, minor = MinAreaRect(c)
	assert.InDelta(t, 4*math.Sqrt2, major, 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, minor, 1e-9)
}

func TestDegenerate(t *testing.T) {
	assert.True(t, Contour{}.IsDegenerate())
	assert.True(t, Contour{{1, 1}}.IsDegenerate())
	assert.True(t, Contour{{1, 1}, {1, 1}}.IsDegenerate())
	assert.False(t, Contour{{1, 1}, {2, 1}}.IsDegenerate())
	assert.False(t, square.IsDegenerate())

	var major, minor = MinAreaRect(Contour{{1, 1}, {4, 5}})
	assert.InDelta(t, 5.0, major, 1e-9)
	assert.Zero(t, minor)
}

func TestLargest(t *testing.T) {
	var small = NewObject(Contour{{0, 0}, {0, 2}, {2, 2}, {2, 0}})
	var big = NewObject(square)
	var largest, ok = Largest([]Object{small, big, small})
	require.True(t, ok)
	assert.Equal(t, big.Area(), largest.Area())
	assert.Equal(t, "BB: [11, 11] Area: 100", largest.String())

	_, ok = Largest(nil)
	assert.False(t, ok)
}
