package viewmodels

import (
	"fmt"

	"ezslider/internal/config"
	"ezslider/internal/domain"
	"ezslider/internal/logic"
	"ezslider/internal/ui/adapters"
	"ezslider/internal/ui/views"
)

// Track is the navigation snapshot a frame is drawn from
type Track struct {
	State     domain.NavigationState
	Physical  int // slot the viewport is showing, may be a clone
	Window    []int
	Layout    logic.CloneLayout
	Dragging  bool
	DragCells int
	// DragProgress is |displacement| / threshold; 1 or more arms the gesture
	DragProgress float64
}

// ViewModel transforms slider state into view-ready data. It is also the
// adapters.Renderer the dot sync writes to.
type ViewModel struct {
	res     *config.Resolved
	heading string
	width   int
	height  int
	help    string

	dots        []bool
	prevEnabled bool
	nextEnabled bool

	status        string
	statusIsError bool
}

// NewViewModel creates a new view model
func NewViewModel(res *config.Resolved, heading string) *ViewModel {
	return &ViewModel{
		res:     res,
		heading: heading,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the rendered key hints
func (vm *ViewModel) SetHelp(help string) {
	vm.help = help
}

// SetStatus sets the status line
func (vm *ViewModel) SetStatus(msg string, isError bool) {
	vm.status = msg
	vm.statusIsError = isError
}

// Status returns the status line
func (vm *ViewModel) Status() string {
	return vm.status
}

// ResetDots resizes the dot row, clearing every marker
func (vm *ViewModel) ResetDots(n int) {
	vm.dots = make([]bool, n)
}

// SetDotCurrent implements adapters.Renderer
func (vm *ViewModel) SetDotCurrent(index int, current bool) {
	if index < 0 || index >= len(vm.dots) {
		return
	}
	vm.dots[index] = current
}

// SetNavEnabled implements adapters.Renderer
func (vm *ViewModel) SetNavEnabled(button adapters.NavButton, enabled bool) {
	switch button {
	case adapters.NavPrev:
		vm.prevEnabled = enabled
	case adapters.NavNext:
		vm.nextEnabled = enabled
	}
}

// Dots returns a copy of the dot markers
func (vm *ViewModel) Dots() []bool {
	out := make([]bool, len(vm.dots))
	copy(out, vm.dots)
	return out
}

// CurrentDot returns the marked dot, or -1
func (vm *ViewModel) CurrentDot() int {
	for i, d := range vm.dots {
		if d {
			return i
		}
	}
	return -1
}

// NavEnabled reports whether button is enabled
func (vm *ViewModel) NavEnabled(button adapters.NavButton) bool {
	if button == adapters.NavNext {
		return vm.nextEnabled
	}
	return vm.prevEnabled
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(t Track) views.ViewState {
	inert := t.State.Phase == domain.PhaseInert

	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Heading:       vm.heading,
		Cards:         vm.cards(t),
		Dots:          vm.Dots(),
		PrevLabel:     vm.res.PrevLabel,
		NextLabel:     vm.res.NextLabel,
		PrevEnabled:   vm.prevEnabled,
		NextEnabled:   vm.nextEnabled,
		DotsPosition:  vm.res.DotsPosition,
		NavOrder:      vm.res.NavOrder,
		Dragging:      t.Dragging,
		DragOffset:    t.DragCells,
		DragProgress:  t.DragProgress,
		Transitioning: t.State.Phase == domain.PhaseTransitioning,
		Inert:         inert,
		Status:        vm.status,
		StatusIsError: vm.statusIsError,
		Help:          vm.help,
	}
	if !inert && t.State.TotalSlides > 0 {
		vs.Position = fmt.Sprintf("%d/%d", t.State.CurrentIndex+1, t.State.TotalSlides)
	}
	return vs
}

func (vm *ViewModel) cards(t Track) []views.Card {
	cards := make([]views.Card, 0, len(t.Window))
	for i, logical := range t.Window {
		if logical < 0 || logical >= len(vm.res.Slides) {
			continue
		}
		slide := vm.res.Slides[logical]
		title := slide.Title
		if title == "" {
			title = fmt.Sprintf("Slide %d", logical+1)
		}
		cards = append(cards, views.Card{
			Logical: logical,
			Title:   title,
			Lines:   vm.SlideLines(logical),
			Clone:   t.State.Loop && t.Layout.IsClone(t.Physical+i),
			Current: i == 0 && t.State.Phase != domain.PhaseInert,
		})
	}
	return cards
}

// SlideLines returns the block text of a slide, falling back to its flattened body
func (vm *ViewModel) SlideLines(logical int) []string {
	if logical < len(vm.res.Lines) && len(vm.res.Lines[logical]) > 0 {
		return vm.res.Lines[logical]
	}
	if body := vm.res.Slides[logical].Body; body != "" {
		return []string{body}
	}
	return nil
}
