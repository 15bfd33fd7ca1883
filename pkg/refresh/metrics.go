package refresh

import (
	"os"
	"strconv"
	"sync"
)

// RawInsetsEnv disables safe-area adjusted insets for the whole process when
// set to a true value.
const RawInsetsEnv = "PLREFRESH_RAW_INSETS"

// adjustedInsetsEnabled is detected once, on first use, and never changes.
var adjustedInsetsEnabled = sync.OnceValue(func() bool {
	raw, err := strconv.ParseBool(os.Getenv(RawInsetsEnv))
	if err != nil {
		return true
	}
	return !raw
})

// Metrics reads and writes per-edge geometry of a surface. Every read on a
// nil surface returns zero and every write is dropped.
type Metrics struct {
	s Surface
}

// MetricsOf wraps a surface.
func MetricsOf(s Surface) Metrics {
	return Metrics{s: s}
}

func (m Metrics) adjusted() (Insets, bool) {
	if m.s == nil || !adjustedInsetsEnabled() {
		return Insets{}, false
	}
	p, ok := m.s.(AdjustedInsetProvider)
	if !ok {
		return Insets{}, false
	}
	return p.AdjustedContentInset(), true
}

// Inset is the effective inset: the adjusted inset when the surface reports
// one, the raw content inset otherwise.
func (m Metrics) Inset() Insets {
	if m.s == nil {
		return Insets{}
	}
	if adj, ok := m.adjusted(); ok {
		return adj
	}
	return m.s.ContentInset()
}

// setInset writes an effective inset edge back as a raw content inset, removing
// the system adjustment so the effective value ends up equal to v.
func (m Metrics) setInset(v float64, pick func(*Insets) *float64) {
	if m.s == nil {
		return
	}
	inset := m.s.ContentInset()
	*pick(&inset) = v
	if adj, ok := m.adjusted(); ok {
		raw := m.s.ContentInset()
		*pick(&inset) -= *pick(&adj) - *pick(&raw)
	}
	m.s.SetContentInset(inset)
}

func top(i *Insets) *float64    { return &i.Top }
func bottom(i *Insets) *float64 { return &i.Bottom }
func left(i *Insets) *float64   { return &i.Left }
func right(i *Insets) *float64  { return &i.Right }

func (m Metrics) InsetTop() float64    { return m.Inset().Top }
func (m Metrics) InsetBottom() float64 { return m.Inset().Bottom }
func (m Metrics) InsetLeft() float64   { return m.Inset().Left }
func (m Metrics) InsetRight() float64  { return m.Inset().Right }

func (m Metrics) SetInsetTop(v float64)    { m.setInset(v, top) }
func (m Metrics) SetInsetBottom(v float64) { m.setInset(v, bottom) }
func (m Metrics) SetInsetLeft(v float64)   { m.setInset(v, left) }
func (m Metrics) SetInsetRight(v float64)  { m.setInset(v, right) }

// Offset returns the content offset.
func (m Metrics) Offset() Point {
	if m.s == nil {
		return Point{}
	}
	return m.s.ContentOffset()
}

// SetOffset moves the content offset.
func (m Metrics) SetOffset(p Point) {
	if m.s == nil {
		return
	}
	m.s.SetContentOffset(p)
}

func (m Metrics) OffsetX() float64 { return m.Offset().X }
func (m Metrics) OffsetY() float64 { return m.Offset().Y }

func (m Metrics) SetOffsetX(x float64) {
	p := m.Offset()
	p.X = x
	m.SetOffset(p)
}

func (m Metrics) SetOffsetY(y float64) {
	p := m.Offset()
	p.Y = y
	m.SetOffset(p)
}

// ContentWidth is the width of the scrollable content.
func (m Metrics) ContentWidth() float64 {
	if m.s == nil {
		return 0
	}
	return m.s.ContentSize().Width
}

// ContentHeight is the height of the scrollable content.
func (m Metrics) ContentHeight() float64 {
	if m.s == nil {
		return 0
	}
	return m.s.ContentSize().Height
}

// Width is the viewport width.
func (m Metrics) Width() float64 {
	if m.s == nil {
		return 0
	}
	return m.s.Bounds().Width
}

// Height is the viewport height.
func (m Metrics) Height() float64 {
	if m.s == nil {
		return 0
	}
	return m.s.Bounds().Height
}

// IsDragging reports whether a gesture is moving the surface.
func (m Metrics) IsDragging() bool {
	return m.s != nil && m.s.IsDragging()
}

// PagingEnabled reports the surface paging flag.
func (m Metrics) PagingEnabled() bool {
	return m.s != nil && m.s.IsPagingEnabled()
}

// TotalItemCount sums items across all sections, or 0 for surfaces without
// sections.
func (m Metrics) TotalItemCount() int {
	counter, ok := m.s.(ItemCounter)
	if !ok || counter == nil {
		return 0
	}
	total := 0
	for section := 0; section < counter.NumberOfSections(); section++ {
		total += counter.NumberOfItems(section)
	}
	return total
}
