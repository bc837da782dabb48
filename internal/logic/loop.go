package logic

// PhysicalSlide is one rendered slot of the looping track
type PhysicalSlide struct {
	Source int // logical index this slot shows
	Clone  bool
}

// CloneLayout is the rendered track for loop mode: Visible tail clones, the
// real slides, then Visible head clones.
type CloneLayout struct {
	Total   int
	Visible int
	Slides  []PhysicalSlide
}

// BuildCloneLayout builds the track for total logical slides with visible
// slides in the viewport. Clone counts never exceed total.
func BuildCloneLayout(total, visible int) CloneLayout {
	if total <= 0 {
		return CloneLayout{}
	}
	if visible < 1 {
		visible = 1
	}
	edge := visible
	if edge > total {
		edge = total
	}

	slides := make([]PhysicalSlide, 0, total+2*edge)
	for i := total - edge; i < total; i++ {
		slides = append(slides, PhysicalSlide{Source: i, Clone: true})
	}
	for i := 0; i < total; i++ {
		slides = append(slides, PhysicalSlide{Source: i})
	}
	for i := 0; i < edge; i++ {
		slides = append(slides, PhysicalSlide{Source: i, Clone: true})
	}

	return CloneLayout{Total: total, Visible: edge, Slides: slides}
}

// Len returns the physical slot count
func (l CloneLayout) Len() int {
	return len(l.Slides)
}

// Contains reports whether physical addresses a slot
func (l CloneLayout) Contains(physical int) bool {
	return physical >= 0 && physical < len(l.Slides)
}

// ToPhysical maps a logical index to its real (non-clone) slot
func (l CloneLayout) ToPhysical(logical int) int {
	return logical + l.Visible
}

// ToLogical maps any slot, clone or not, to the logical slide it shows.
// Out-of-range slots wrap around the logical space.
func (l CloneLayout) ToLogical(physical int) int {
	if l.Contains(physical) {
		return l.Slides[physical].Source
	}
	if l.Total == 0 {
		return 0
	}
	return wrap(physical-l.Visible, l.Total)
}

// IsClone reports whether physical is a clone slot
func (l CloneLayout) IsClone(physical int) bool {
	return l.Contains(physical) && l.Slides[physical].Clone
}

// Reanchor returns the real slot showing the same slide as physical, and
// whether that differs from physical
func (l CloneLayout) Reanchor(physical int) (int, bool) {
	if !l.Contains(physical) || l.Slides[physical].Clone {
		real := l.ToPhysical(l.ToLogical(physical))
		return real, real != physical
	}
	return physical, false
}

// StepTarget returns the slot a step of delta from physical should animate
// to so that it lands on logical. The step stays in clone territory when that
// keeps the motion continuous; otherwise it falls back to the real slot.
func (l CloneLayout) StepTarget(physical, delta, logical int) int {
	candidate := physical + delta
	if l.Contains(candidate) && l.Slides[candidate].Source == logical {
		return candidate
	}
	return l.ToPhysical(logical)
}

// Window returns the logical sources of the Visible slots starting at physical
func (l CloneLayout) Window(physical int) []int {
	out := make([]int, 0, l.Visible)
	for i := 0; i < l.Visible; i++ {
		out = append(out, l.ToLogical(physical+i))
	}
	return out
}
