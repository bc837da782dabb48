package domain

import "time"

// DragModes selects which pointer sources may start a drag gesture
type DragModes struct {
	Mouse bool
	Touch bool
}

// SliderConfig is the fully resolved, per-instance slider configuration
type SliderConfig struct {
	ItemsPerView       int
	Loop               bool
	Rewind             bool
	StartIndex         int // 0-based
	Drag               DragModes
	DragThresholdPx    float64
	TransitionDuration time.Duration // zero commits transitions immediately
	FreezeFull         bool          // disable navigation when every slide fits in the viewport
}

// Phase is the state machine phase of a slider
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
	PhaseDragging
	PhaseInert
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseDragging:
		return "dragging"
	case PhaseInert:
		return "inert"
	default:
		return "unknown"
	}
}

// SlideSet describes the logical items and how many are visible at once
type SlideSet struct {
	TotalSlides  int
	VisibleCount int
}

// NavigationState is a read-only snapshot of a slider
type NavigationState struct {
	CurrentIndex  int
	PhysicalIndex int // equals CurrentIndex unless looping
	PendingIndex  int // -1 when no transition is in flight
	TotalSlides   int
	VisibleCount  int
	MaxIndex      int
	Phase         Phase
	Loop          bool
	Rewind        bool
}

// Direction describes how a committed transition moved
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
	DirectionJump Direction = "jump"
)

// PointerSource identifies the input device driving a gesture
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

func (s PointerSource) String() string {
	if s == PointerTouch {
		return "touch"
	}
	return "mouse"
}

// GestureResolution is the outcome of a finished drag
type GestureResolution string

const (
	GestureCancel GestureResolution = "cancel"
	GesturePrev   GestureResolution = "prev"
	GestureNext   GestureResolution = "next"
)

// GestureSample holds the offsets of the drag in progress
type GestureSample struct {
	Source          PointerSource
	StartOffsetPx   float64
	CurrentOffsetPx float64
	PointerActive   bool
}

// Displacement returns how far the pointer moved since the gesture started
func (g GestureSample) Displacement() float64 {
	return g.CurrentOffsetPx - g.StartOffsetPx
}

// Slide is one logical item as read from the markup
type Slide struct {
	Index int
	Title string
	Body  string
}
