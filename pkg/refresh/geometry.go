package refresh

// Point is a position in surface coordinates.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Insets reserve space around the content of a surface.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Add returns the component-wise sum of two insets.
func (i Insets) Add(o Insets) Insets {
	return Insets{
		Top:    i.Top + o.Top,
		Left:   i.Left + o.Left,
		Bottom: i.Bottom + o.Bottom,
		Right:  i.Right + o.Right,
	}
}

// Rect is the frame of an accessory view in its surface's coordinate space.
type Rect struct {
	Origin Point
	Size   Size
}

// MaxY is the bottom edge of the rect.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// MaxX is the right edge of the rect.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
