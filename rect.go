package cssel

// Rect is a plain rectangle value. Behavior is attached as methods on the
// concrete type rather than at runtime, so a Rect reconstructed from its
// serialized form (codec.Deserialize) carries Area with it.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect returns a Rect with the given dimensions. Inputs are not validated.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area computes the rectangle's area.
func (r Rect) Area() float64 { return r.Width * r.Height }
