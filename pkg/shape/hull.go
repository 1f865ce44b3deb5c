package shape

import (
	"math"
	"sort"
)

// ConvexHull returns the hull vertices in counter-clockwise order (monotone chain).
// Collinear points are dropped.
func ConvexHull(c Contour) Contour {
	var points = make(Contour, len(c))
	copy(points, c)
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	points = unique(points)
	if len(points) < 3 {
		return points
	}

	var hull = make(Contour, 0, 2*len(points))
	for _, p := range points {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	var lower = len(hull) + 1
	for i := len(points) - 2; i >= 0; i-- {
		var p = points[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// MinAreaRect returns the side lengths of the smallest rotated rectangle enclosing
// the contour, larger side first. One hull edge always lies on the optimal rectangle,
// so every hull edge direction is tried.
func MinAreaRect(c Contour) (major, minor float64) {
	var hull = ConvexHull(c)
	switch len(hull) {
	case 0, 1:
		return 0, 0
	case 2:
		return distance(hull[0], hull[1]), 0
	}

	var bestArea = math.Inf(1)
	for i := range hull {
		var a, b = hull[i], hull[(i+1)%len(hull)]
		var edge = distance(a, b)
		if edge == 0 {
			continue
		}
		var ux = float64(b.X-a.X) / edge
		var uy = float64(b.Y-a.Y) / edge
		var minU, maxU, minV, maxV = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			var dx = float64(p.X - a.X)
			var dy = float64(p.Y - a.Y)
			var u = dx*ux + dy*uy
			var v = -dx*uy + dy*ux
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
		var w, h = maxU - minU, maxV - minV
		if w*h < bestArea {
			bestArea = w * h
			major, minor = math.Max(w, h), math.Min(w, h)
		}
	}
	return major, minor
}

func cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

func unique(sorted Contour) Contour {
	if len(sorted) == 0 {
		return sorted
	}
	var result = sorted[:1]
	for _, p := range sorted[1:] {
		if p != result[len(result)-1] {
			result = append(result, p)
		}
	}
	return result
}
