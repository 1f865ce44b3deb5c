package shape

// Chain code directions, clockwise from north. Y grows downwards.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const DirectionCount = 8

// Encode returns the chain code of the move from a to b.
// Rules are checked in order, so axis-aligned moves resolve to the first match
// and a zero move falls through to NorthWest.
func Encode(a, b Point) int {
	var (
		up    = a.Y > b.Y
		down  = a.Y < b.Y
		left  = a.X > b.X
		right = a.X < b.X
		sameY = a.Y == b.Y
		sameX = a.X == b.X
	)
	switch {
	case up && sameX:
		return North
	case up && right:
		return NorthEast
	case right && sameY:
		return East
	case down && right:
		return SouthEast
	case down && sameX:
		return South
	case left && down:
		return SouthWest
	case left && sameY:
		return West
	default:
		return NorthWest
	}
}

// ChainCode encodes every edge of the closed contour, including the edge from the
// last point back to the first. The result has one code per point.
func ChainCode(c Contour) []int {
	if len(c) == 0 {
		return nil
	}
	var result = make([]int, len(c))
	for i := range c {
		result[i] = Encode(c[i], c[(i+1)%len(c)])
	}
	return result
}
