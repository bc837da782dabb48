package logic

import (
	"math"

	"ezslider/internal/domain"
)

// GestureResolver turns one press-move-release sequence into prev, next or
// cancel. It holds at most one sample at a time.
type GestureResolver struct {
	modes     domain.DragModes
	threshold float64
	sample    *domain.GestureSample
}

// NewGestureResolver creates a resolver for the enabled pointer sources
func NewGestureResolver(modes domain.DragModes, thresholdPx float64) *GestureResolver {
	return &GestureResolver{
		modes:     modes,
		threshold: math.Abs(thresholdPx),
	}
}

// Enabled reports whether source may start a gesture
func (g *GestureResolver) Enabled(source domain.PointerSource) bool {
	switch source {
	case domain.PointerTouch:
		return g.modes.Touch
	default:
		return g.modes.Mouse
	}
}

// Active reports whether a gesture is open
func (g *GestureResolver) Active() bool {
	return g.sample != nil
}

// Sample returns a copy of the open sample
func (g *GestureResolver) Sample() (domain.GestureSample, bool) {
	if g.sample == nil {
		return domain.GestureSample{}, false
	}
	return *g.sample, true
}

// Start opens a sample at offset. It refuses disabled sources and a second
// gesture while one is open.
func (g *GestureResolver) Start(source domain.PointerSource, offsetPx float64) bool {
	if g.sample != nil || !g.Enabled(source) {
		return false
	}
	g.sample = &domain.GestureSample{
		Source:          source,
		StartOffsetPx:   offsetPx,
		CurrentOffsetPx: offsetPx,
		PointerActive:   true,
	}
	return true
}

// Update records the pointer position and returns the displacement so far
func (g *GestureResolver) Update(offsetPx float64) (float64, bool) {
	if g.sample == nil {
		return 0, false
	}
	g.sample.CurrentOffsetPx = offsetPx
	return g.sample.Displacement(), true
}

// End closes the sample and resolves it. Dragging content rightward
// (positive displacement) reveals the previous slide.
func (g *GestureResolver) End() (domain.GestureResolution, float64) {
	if g.sample == nil {
		return domain.GestureCancel, 0
	}
	d := g.sample.Displacement()
	g.sample = nil
	return g.Classify(d), d
}

// Cancel closes the sample without committing a move
func (g *GestureResolver) Cancel() (domain.GestureResolution, float64) {
	if g.sample == nil {
		return domain.GestureCancel, 0
	}
	d := g.sample.Displacement()
	g.sample = nil
	return domain.GestureCancel, d
}

// Classify resolves a displacement against the threshold
func (g *GestureResolver) Classify(displacement float64) domain.GestureResolution {
	if math.Abs(displacement) < g.threshold {
		return domain.GestureCancel
	}
	if displacement > 0 {
		return domain.GesturePrev
	}
	if displacement < 0 {
		return domain.GestureNext
	}
	// zero threshold and no movement
	return domain.GestureCancel
}
