package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ezslider/internal/domain"
	"ezslider/internal/markup"
)

// ElementResolver looks elements up by selector. markup.Document implements it.
type ElementResolver interface {
	Resolve(selector string) (*markup.Element, error)
}

// Layout positions of the dots row and nav buttons
const (
	DotsTop    = "top"
	DotsBottom = "bottom"

	NavSplit  = "split"  // prev, dots, next
	NavBefore = "before" // prev, next, dots
	NavAfter  = "after"  // dots, prev, next
)

const (
	defaultPrevLabel = "‹"
	defaultNextLabel = "›"
)

// Resolved is everything a slider and its renderer need, produced once per
// instance
type Resolved struct {
	Slider       domain.SliderConfig
	Slides       []domain.Slide
	Lines        [][]string // per-slide block text for the full view
	PrevLabel    string
	NextLabel    string
	DotsPosition string
	NavOrder     string
}

// Resolve merges opts over Defaults and validates them against the markup.
// Every failure is a *domain.ConfigurationError.
func Resolve(opts Options, provider ElementResolver) (*Resolved, error) {
	o := Merge(Defaults(), opts)

	if strings.TrimSpace(o.Target) == "" {
		return nil, domain.NewConfigError("target", domain.ErrMissingTarget)
	}
	target, err := provider.Resolve(o.Target)
	if err != nil {
		if errors.Is(err, markup.ErrNotFound) {
			return nil, domain.NewConfigError("target", fmt.Errorf("%w: %s", domain.ErrTargetNotFound, o.Target))
		}
		return nil, domain.NewConfigError("target", fmt.Errorf("%w: %v", domain.ErrInvalidOption, err))
	}

	items := target.Children()
	if len(items) < 2 {
		return nil, domain.NewConfigError("target", fmt.Errorf("%w: found %d", domain.ErrTooFewItems, len(items)))
	}

	cfg, err := sliderConfig(o, len(items))
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Slider:       cfg,
		PrevLabel:    defaultPrevLabel,
		NextLabel:    defaultNextLabel,
		DotsPosition: o.DotsPosition,
		NavOrder:     o.NavOrder,
	}
	for i, item := range items {
		r.Slides = append(r.Slides, domain.Slide{
			Index: i,
			Title: item.Title(),
			Body:  item.Text(),
		})
		r.Lines = append(r.Lines, item.Lines())
	}

	if o.Dots != "" {
		if _, err := provider.Resolve(o.Dots); err != nil {
			return nil, domain.NewConfigError("dots", fmt.Errorf("%w: %s", domain.ErrTargetNotFound, o.Dots))
		}
	}

	r.PrevLabel = navLabel(provider, o.Nav, "prev", defaultPrevLabel)
	r.NextLabel = navLabel(provider, o.Nav, "next", defaultNextLabel)

	switch r.DotsPosition {
	case DotsTop, DotsBottom:
	default:
		return nil, domain.InvalidOption("dots_position", "want %q or %q, got %q", DotsTop, DotsBottom, r.DotsPosition)
	}
	switch r.NavOrder {
	case NavSplit, NavBefore, NavAfter:
	default:
		return nil, domain.InvalidOption("nav_order", "want split, before or after, got %q", r.NavOrder)
	}

	return r, nil
}

func sliderConfig(o Options, total int) (domain.SliderConfig, error) {
	items := intOr(o.Items, 1)
	if items < 1 {
		return domain.SliderConfig{}, domain.InvalidOption("items", "must be at least 1, got %d", items)
	}

	start := intOr(o.StartIndex, 1)
	if start < 1 || start > total {
		return domain.SliderConfig{}, domain.InvalidOption("start_index", "must be between 1 and %d, got %d", total, start)
	}

	threshold := floatOr(o.DragThreshold, 40)
	if threshold < 0 {
		return domain.SliderConfig{}, domain.InvalidOption("drag_threshold", "must not be negative, got %v", threshold)
	}

	ms := intOr(o.TransitionMs, 0)
	if ms < 0 {
		return domain.SliderConfig{}, domain.InvalidOption("transition_ms", "must not be negative, got %d", ms)
	}

	freeze := boolOr(o.FreezeFull, true)
	if items > total && !freeze {
		return domain.SliderConfig{}, domain.InvalidOption("items", "%d items per view exceeds %d slides", items, total)
	}

	drag := domain.DragModes{}
	if o.Drag != nil {
		drag.Mouse = boolOr(o.Drag.Mouse, false)
		drag.Touch = boolOr(o.Drag.Touch, false)
	}

	return domain.SliderConfig{
		ItemsPerView:       items,
		Loop:               boolOr(o.Loop, false),
		Rewind:             boolOr(o.Rewind, false),
		StartIndex:         start - 1,
		Drag:               drag,
		DragThresholdPx:    threshold,
		TransitionDuration: time.Duration(ms) * time.Millisecond,
		FreezeFull:         freeze,
	}, nil
}

// navLabel reads the text of [data-ezs-nav="which"], scoped to scope when set
func navLabel(provider ElementResolver, scope, which, fallback string) string {
	sel := fmt.Sprintf(`[data-ezs-nav="%s"]`, which)
	if scope != "" {
		sel = scope + " " + sel
	}
	el, err := provider.Resolve(sel)
	if err != nil {
		if scope != "" {
			log.Printf("Config: no %s button under %q, using default label", which, scope)
		}
		return fallback
	}
	if text := el.Text(); text != "" {
		return text
	}
	return fallback
}
