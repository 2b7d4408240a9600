package vmath

import "math"

// Vec2 is a 2D float vector used for position, velocity and acceleration
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the Euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Manhattan returns |dx| + |dy| between v and o
func (v Vec2) Manhattan(o Vec2) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y)
}

// FromHeading returns a vector of the given magnitude along heading degrees
// Screen space: 0 points right, 90 points down
func FromHeading(deg, speed float64) Vec2 {
	rad := Radians(deg)
	return Vec2{X: speed * math.Cos(rad), Y: speed * math.Sin(rad)}
}

// Pursue returns a velocity of magnitude speed pointing from 'from' to 'to'
// A zero horizontal delta puts the full speed on the vertical axis
// Returns false when both points coincide
func Pursue(from, to Vec2, speed float64) (Vec2, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 {
		if dy == 0 {
			return Vec2{}, false
		}
		return Vec2{X: 0, Y: speed * Sign(dy)}, true
	}
	dist := math.Hypot(dx, dy)
	return Vec2{X: speed * dx / dist, Y: speed * dy / dist}, true
}
