package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged       EventType = "SlideChanged"
	EventTransitionStarted  EventType = "TransitionStarted"
	EventReanchored         EventType = "Reanchored"
	EventGestureStarted     EventType = "GestureStarted"
	EventGestureMoved       EventType = "GestureMoved"
	EventGestureResolved    EventType = "GestureResolved"
	EventSliderReconfigured EventType = "SliderReconfigured"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ChangeEvent is emitted once per committed transition
type ChangeEvent struct {
	PreviousIndex int
	NewIndex      int
	Direction     Direction
}

func (e ChangeEvent) Type() EventType { return EventSlideChanged }

// TransitionStartedEvent is emitted when a visual move begins, and again
// whenever a newer request replaces the in-flight target
type TransitionStartedEvent struct {
	From      int
	Target    int
	Physical  int
	Direction Direction
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// ReanchoredEvent asks the renderer to jump, unanimated, out of clone territory
type ReanchoredEvent struct {
	Physical int
}

func (e ReanchoredEvent) Type() EventType { return EventReanchored }

// GestureStartedEvent is emitted when a drag opens
type GestureStartedEvent struct {
	Source PointerSource
}

func (e GestureStartedEvent) Type() EventType { return EventGestureStarted }

// GestureMovedEvent carries the live drag displacement
type GestureMovedEvent struct {
	DisplacementPx float64
}

func (e GestureMovedEvent) Type() EventType { return EventGestureMoved }

// GestureResolvedEvent is emitted when a drag ends or is cancelled
type GestureResolvedEvent struct {
	Resolution     GestureResolution
	DisplacementPx float64
}

func (e GestureResolvedEvent) Type() EventType { return EventGestureResolved }

// SliderReconfiguredEvent is emitted after the slide set changes size
type SliderReconfiguredEvent struct {
	TotalSlides  int
	VisibleCount int
	CurrentIndex int
}

func (e SliderReconfiguredEvent) Type() EventType { return EventSliderReconfigured }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
