package vmath

// Box is an axis-aligned bounding box stored as edges
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds a box of the given size centered on center
func BoxAt(center, size Vec2) Box {
	hw, hh := size.X/2, size.Y/2
	return Box{
		Left:   center.X - hw,
		Top:    center.Y - hh,
		Right:  center.X + hw,
		Bottom: center.Y + hh,
	}
}

// Rect returns the box spanning [0,w] x [0,h]
func Rect(w, h float64) Box {
	return Box{Right: w, Bottom: h}
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Center returns the box midpoint
func (b Box) Center() Vec2 {
	return Vec2{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Intersects reports strict overlap; boxes sharing only an edge do not intersect
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Top < o.Bottom && b.Bottom > o.Top
}

// Outside reports whether b lies entirely outside area
func (b Box) Outside(area Box) bool {
	return b.Right < area.Left || b.Left > area.Right || b.Bottom < area.Top || b.Top > area.Bottom
}

// Expand grows the box by margin on every side
func (b Box) Expand(margin float64) Box {
	return Box{
		Left:   b.Left - margin,
		Top:    b.Top - margin,
		Right:  b.Right + margin,
		Bottom: b.Bottom + margin,
	}
}

// ClampInto returns the center offset that pushes b back inside area
// Horizontal and vertical edges are resolved independently, right before left and bottom before top
func (b Box) ClampInto(area Box) Vec2 {
	var d Vec2
	if b.Right > area.Right {
		d.X = area.Right - b.Right
	} else if b.Left < area.Left {
		d.X = area.Left - b.Left
	}
	if b.Bottom > area.Bottom {
		d.Y = area.Bottom - b.Bottom
	} else if b.Top < area.Top {
		d.Y = area.Top - b.Top
	}
	return d
}
