package adapters

import (
	"ezslider/internal/domain"
)

// NavButton identifies a navigation button
type NavButton int

const (
	NavPrev NavButton = iota
	NavNext
)

func (b NavButton) String() string {
	if b == NavNext {
		return "next"
	}
	return "prev"
}

// Renderer applies indicator updates to concrete elements. The sync adapter
// only ever talks to this interface.
type Renderer interface {
	SetDotCurrent(index int, current bool)
	SetNavEnabled(button NavButton, enabled bool)
}

// Indicators is the set of visual flags implied by one navigation state
type Indicators struct {
	DotCount    int
	ClearDot    int // dot losing the current marker, -1 for none
	CurrentDot  int
	PrevEnabled bool
	NextEnabled bool
}

// SyncAdapter maps navigation changes onto dot and nav-button flags
type SyncAdapter struct {
	total   int
	visible int
	loop    bool
	rewind  bool
	inert   bool
}

// NewSyncAdapter creates an adapter for the slider described by st
func NewSyncAdapter(st domain.NavigationState) *SyncAdapter {
	a := &SyncAdapter{}
	a.Reset(st)
	return a
}

// Reset refreshes the slide-set shape, e.g. after a reconfiguration
func (a *SyncAdapter) Reset(st domain.NavigationState) {
	a.total = st.TotalSlides
	a.visible = st.VisibleCount
	a.loop = st.Loop
	a.rewind = st.Rewind
	a.inert = st.Phase == domain.PhaseInert
}

// DotCount is the number of dots: one per reachable position
func (a *SyncAdapter) DotCount() int {
	if a.inert || a.total < 2 {
		return 0
	}
	if a.loop {
		return a.total
	}
	return a.maxIndex() + 1
}

func (a *SyncAdapter) maxIndex() int {
	if a.loop {
		return a.total - 1
	}
	max := a.total - a.visible
	if max < 0 {
		return 0
	}
	return max
}

// dotFor maps an index to its dot, wrapping in loop mode
func (a *SyncAdapter) dotFor(index int) int {
	n := a.DotCount()
	if n == 0 {
		return -1
	}
	if a.loop {
		return ((index % n) + n) % n
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}

func (a *SyncAdapter) navFor(index int) (prev, next bool) {
	if a.DotCount() == 0 {
		return false, false
	}
	if a.loop || a.rewind {
		return true, true
	}
	return index > 0, index < a.maxIndex()
}

// Compute returns the updates required by a committed change
func (a *SyncAdapter) Compute(ev domain.ChangeEvent) Indicators {
	cur := a.dotFor(ev.NewIndex)
	old := a.dotFor(ev.PreviousIndex)
	if old == cur {
		old = -1
	}
	prev, next := a.navFor(ev.NewIndex)
	return Indicators{
		DotCount:    a.DotCount(),
		ClearDot:    old,
		CurrentDot:  cur,
		PrevEnabled: prev,
		NextEnabled: next,
	}
}

// Initial returns the indicators for the first paint of st
func (a *SyncAdapter) Initial(st domain.NavigationState) Indicators {
	prev, next := a.navFor(st.CurrentIndex)
	return Indicators{
		DotCount:    a.DotCount(),
		ClearDot:    -1,
		CurrentDot:  a.dotFor(st.CurrentIndex),
		PrevEnabled: prev,
		NextEnabled: next,
	}
}

// Apply pushes ind to r
func Apply(r Renderer, ind Indicators) {
	if ind.ClearDot >= 0 {
		r.SetDotCurrent(ind.ClearDot, false)
	}
	if ind.CurrentDot >= 0 {
		r.SetDotCurrent(ind.CurrentDot, true)
	}
	r.SetNavEnabled(NavPrev, ind.PrevEnabled)
	r.SetNavEnabled(NavNext, ind.NextEnabled)
}
