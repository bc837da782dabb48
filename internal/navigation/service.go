package navigation

import (
	"log"

	"ezslider/internal/domain"
	"ezslider/internal/eventbus"
	"ezslider/internal/logic"
)

// Service is the slide state machine. It owns the navigation state and is the
// only thing that mutates it. All methods run synchronously on the caller's
// goroutine and are not safe for concurrent use.
type Service struct {
	cfg     domain.SliderConfig
	bounds  logic.Bounds
	layout  logic.CloneLayout
	gesture *logic.GestureResolver
	bus     eventbus.EventBus
	inert   bool
	st      state
}

// New creates a slider over totalSlides items. A nil bus gets a private one so
// OnChange still works. Fewer than 2 slides yields an inert slider, not an error.
func New(cfg domain.SliderConfig, totalSlides int, bus eventbus.EventBus) (*Service, error) {
	if err := validate(cfg, totalSlides); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = eventbus.New()
	}

	s := &Service{
		cfg:     cfg,
		bus:     bus,
		gesture: logic.NewGestureResolver(cfg.Drag, cfg.DragThresholdPx),
	}
	s.rebuild(totalSlides, cfg.ItemsPerView)

	if !s.inert {
		s.st.current = logic.Clamp(cfg.StartIndex, s.bounds.MaxIndex())
		s.st.physical = s.physicalOf(s.st.current)
	}
	s.st.pending = -1

	return s, nil
}

func validate(cfg domain.SliderConfig, total int) error {
	if total < 0 {
		return domain.InvalidOption("items", "negative slide count %d", total)
	}
	if cfg.ItemsPerView < 1 {
		return domain.InvalidOption("items", "items per view must be at least 1, got %d", cfg.ItemsPerView)
	}
	if cfg.DragThresholdPx < 0 {
		return domain.InvalidOption("drag_threshold", "must not be negative, got %v", cfg.DragThresholdPx)
	}
	if cfg.TransitionDuration < 0 {
		return domain.InvalidOption("transition_ms", "must not be negative, got %v", cfg.TransitionDuration)
	}
	if total >= 2 && cfg.ItemsPerView > total && !cfg.FreezeFull {
		return domain.InvalidOption("items", "%d items per view exceeds %d slides", cfg.ItemsPerView, total)
	}
	return nil
}

// rebuild recomputes bounds, clone layout and inertness for a slide set
func (s *Service) rebuild(total, visible int) {
	s.bounds = logic.Bounds{
		Total:   total,
		Visible: visible,
		Loop:    s.cfg.Loop,
		Rewind:  s.cfg.Rewind,
	}
	s.inert = total < 2 || (s.cfg.FreezeFull && visible >= total)
	if s.cfg.Loop && !s.inert {
		s.layout = logic.BuildCloneLayout(total, visible)
	} else {
		s.layout = logic.CloneLayout{}
	}
	if s.inert {
		s.st.phase = domain.PhaseInert
	} else {
		s.st.phase = domain.PhaseIdle
	}
}

func (s *Service) physicalOf(logical int) int {
	if s.cfg.Loop && !s.inert {
		return s.layout.ToPhysical(logical)
	}
	return logical
}

// Next moves one slide forward. It returns false when the move is rejected.
func (s *Service) Next() bool {
	return s.request(logic.Step(1))
}

// Prev moves one slide back. It returns false when the move is rejected.
func (s *Service) Prev() bool {
	return s.request(logic.Step(-1))
}

// GoTo jumps to index. It returns false for out-of-range targets.
func (s *Service) GoTo(index int) bool {
	return s.request(logic.Jump(index))
}

// First jumps to the first slide
func (s *Service) First() bool {
	return s.GoTo(0)
}

// Last jumps to the last valid index
func (s *Service) Last() bool {
	return s.GoTo(s.bounds.MaxIndex())
}

// request resolves a move and starts or retargets a transition. While a
// transition is in flight the move is resolved against the pending target and
// replaces it: only the latest target survives.
func (s *Service) request(m logic.Move) bool {
	if s.inert {
		return false
	}
	if s.st.phase == domain.PhaseDragging {
		log.Printf("Navigation: %s ignored while dragging", logic.DirectionOf(m))
		return false
	}

	base, basePhys := s.st.current, s.st.physical
	inFlight := s.st.phase == domain.PhaseTransitioning
	if inFlight {
		base, basePhys = s.st.pending, s.st.pendingPhys
	}

	target, ok := logic.Resolve(base, m, s.bounds)
	if !ok {
		log.Printf("Navigation: rejected %s from %d (max %d)", logic.DirectionOf(m), base, s.bounds.MaxIndex())
		return false
	}
	if target == base {
		return false
	}

	dir := logic.DirectionOf(m)
	if inFlight {
		if s.st.pendingDir != dir {
			dir = domain.DirectionJump
		}
	} else {
		s.st.from = s.st.current
		s.st.phase = domain.PhaseTransitioning
	}
	s.st.pending = target
	s.st.pendingPhys = s.targetPhysical(basePhys, m, target)
	s.st.pendingDir = dir

	s.bus.Publish(domain.TransitionStartedEvent{
		From:      s.st.from,
		Target:    target,
		Physical:  s.st.pendingPhys,
		Direction: dir,
	})

	if s.cfg.TransitionDuration == 0 {
		s.CompleteTransition()
	}
	return true
}

// targetPhysical picks the slot to animate to. Loop steps may land on a clone
// so the motion stays continuous; jumps always use the real slot.
func (s *Service) targetPhysical(basePhys int, m logic.Move, target int) int {
	if !s.cfg.Loop {
		return target
	}
	if m.Jump {
		return s.layout.ToPhysical(target)
	}
	return s.layout.StepTarget(basePhys, m.Delta, target)
}

// CompleteTransition commits the pending target. It is the "visual move
// finished" signal and publishes at most one ChangeEvent no matter how many
// requests were collapsed into the transition. A clone landing is re-anchored
// silently first. Returns false when no transition was in flight.
func (s *Service) CompleteTransition() bool {
	if s.st.phase != domain.PhaseTransitioning {
		return false
	}

	prev := s.st.from
	dir := s.st.pendingDir
	s.st.current = s.st.pending
	s.st.physical = s.st.pendingPhys
	s.st.pending = -1
	s.st.phase = domain.PhaseIdle

	reanchored := false
	if s.cfg.Loop {
		if real, moved := s.layout.Reanchor(s.st.physical); moved {
			s.st.physical = real
			reanchored = true
		}
	}

	if reanchored {
		s.bus.Publish(domain.ReanchoredEvent{Physical: s.st.physical})
	}
	if s.st.current != prev {
		s.bus.Publish(domain.ChangeEvent{
			PreviousIndex: prev,
			NewIndex:      s.st.current,
			Direction:     dir,
		})
	}
	return true
}

// StartGesture opens a drag at offset. It is refused when the slider is
// inert, a transition is in flight, or source is disabled.
func (s *Service) StartGesture(source domain.PointerSource, offsetPx float64) bool {
	if s.st.phase != domain.PhaseIdle {
		return false
	}
	if !s.gesture.Start(source, offsetPx) {
		return false
	}
	s.st.phase = domain.PhaseDragging
	s.bus.Publish(domain.GestureStartedEvent{Source: source})
	return true
}

// UpdateGesture records a pointer move and returns the live displacement
func (s *Service) UpdateGesture(offsetPx float64) (float64, bool) {
	if s.st.phase != domain.PhaseDragging {
		return 0, false
	}
	d, ok := s.gesture.Update(offsetPx)
	if ok {
		s.bus.Publish(domain.GestureMovedEvent{DisplacementPx: d})
	}
	return d, ok
}

// EndGesture resolves the drag on pointer release and navigates accordingly
func (s *Service) EndGesture() domain.GestureResolution {
	if s.st.phase != domain.PhaseDragging {
		return domain.GestureCancel
	}
	res, d := s.gesture.End()
	return s.finishGesture(res, d)
}

// CancelGesture abandons the drag; it never commits a move
func (s *Service) CancelGesture() domain.GestureResolution {
	if s.st.phase != domain.PhaseDragging {
		return domain.GestureCancel
	}
	res, d := s.gesture.Cancel()
	return s.finishGesture(res, d)
}

func (s *Service) finishGesture(res domain.GestureResolution, d float64) domain.GestureResolution {
	s.st.phase = domain.PhaseIdle
	s.bus.Publish(domain.GestureResolvedEvent{Resolution: res, DisplacementPx: d})

	switch res {
	case domain.GestureNext:
		s.Next()
	case domain.GesturePrev:
		s.Prev()
	}
	return res
}

// Reconfigure rebuilds the slider for a new slide set. Any gesture or pending
// transition is discarded and the current index is clamped into the new range.
func (s *Service) Reconfigure(set domain.SlideSet) error {
	cfg := s.cfg
	cfg.ItemsPerView = set.VisibleCount
	if err := validate(cfg, set.TotalSlides); err != nil {
		return err
	}

	if s.st.phase == domain.PhaseDragging {
		s.CancelGesture()
	}
	prev := s.st.current
	s.cfg = cfg
	s.rebuild(set.TotalSlides, set.VisibleCount)
	s.st.pending = -1

	if s.inert {
		s.st.current, s.st.physical = 0, 0
	} else {
		s.st.current = logic.Clamp(s.st.current, s.bounds.MaxIndex())
		s.st.physical = s.physicalOf(s.st.current)
	}

	s.bus.Publish(domain.SliderReconfiguredEvent{
		TotalSlides:  set.TotalSlides,
		VisibleCount: set.VisibleCount,
		CurrentIndex: s.st.current,
	})
	if s.st.current != prev {
		s.bus.Publish(domain.ChangeEvent{
			PreviousIndex: prev,
			NewIndex:      s.st.current,
			Direction:     domain.DirectionJump,
		})
	}
	return nil
}

// OnChange registers listener for committed changes and returns a function
// that removes it
func (s *Service) OnChange(listener Listener) func() {
	return s.bus.Subscribe(domain.EventSlideChanged, func(e domain.DomainEvent) {
		if ev, ok := e.(domain.ChangeEvent); ok {
			listener(ev)
		}
	})
}

// State returns a snapshot of the navigation state
func (s *Service) State() domain.NavigationState {
	return domain.NavigationState{
		CurrentIndex:  s.st.current,
		PhysicalIndex: s.st.physical,
		PendingIndex:  s.st.pending,
		TotalSlides:   s.bounds.Total,
		VisibleCount:  s.bounds.Visible,
		MaxIndex:      s.bounds.MaxIndex(),
		Phase:         s.st.phase,
		Loop:          s.cfg.Loop,
		Rewind:        s.cfg.Rewind,
	}
}

// Gesture returns the open drag sample, if any
func (s *Service) Gesture() (domain.GestureSample, bool) {
	return s.gesture.Sample()
}

// Config returns the slider configuration
func (s *Service) Config() domain.SliderConfig {
	return s.cfg
}

// Layout returns the clone layout; it is empty unless looping
func (s *Service) Layout() logic.CloneLayout {
	return s.layout
}

// Window returns the logical indices shown by the viewport at physical
func (s *Service) Window(physical int) []int {
	if s.bounds.Total == 0 {
		return nil
	}
	if s.cfg.Loop && !s.inert {
		return s.layout.Window(physical)
	}
	out := make([]int, 0, s.bounds.Visible)
	for i := physical; i < physical+s.bounds.Visible && i < s.bounds.Total; i++ {
		out = append(out, i)
	}
	return out
}
