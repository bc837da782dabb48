package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HitKind identifies what a mouse press landed on
type HitKind int

const (
	HitNone HitKind = iota
	HitPrev
	HitNext
	HitDot
	HitTrack
)

// Hit is a clickable span on one row. X1 is exclusive.
type Hit struct {
	Row  int
	X0   int
	X1   int
	Kind HitKind
	Dot  int
}

// Frame is a rendered screen plus the geometry needed for mouse input
type Frame struct {
	Content     string
	TrackTop    int
	TrackBottom int // exclusive
	Hits        []Hit
}

// HitAt returns the target under cell x, y
func (f Frame) HitAt(x, y int) Hit {
	for _, h := range f.Hits {
		if h.Row == y && x >= h.X0 && x < h.X1 {
			return h
		}
	}
	if y >= f.TrackTop && y < f.TrackBottom {
		return Hit{Row: y, Kind: HitTrack, Dot: -1}
	}
	return Hit{Row: y, Kind: HitNone, Dot: -1}
}

// Card is one slide slot in the viewport
type Card struct {
	Logical int
	Title   string
	Lines   []string
	Clone   bool
	Current bool
}

// Dots row placement and nav button order
const (
	DotsTop    = "top"
	DotsBottom = "bottom"

	NavSplit  = "split"
	NavBefore = "before"
	NavAfter  = "after"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Heading       string
	Position      string
	Cards         []Card
	Dots          []bool
	PrevLabel     string
	NextLabel     string
	PrevEnabled   bool
	NextEnabled   bool
	DotsPosition  string
	NavOrder      string
	Dragging      bool
	DragOffset    int     // cells, positive means pulled right
	DragProgress  float64 // |displacement| / threshold
	Transitioning bool
	Inert         bool
	Status        string
	StatusIsError bool
	Help          string
}

const (
	leftPad        = 1
	cardGap        = 1
	minCardText    = 8
	minTrackHeight = 3
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Compose lays out the carousel and records where its controls ended up
func (r *Renderer) Compose(vs ViewState) Frame {
	if vs.Width <= 0 {
		vs.Width = fallbackWidth
	}
	if vs.Height <= 0 {
		vs.Height = fallbackHeight
	}

	header := r.header(vs)
	controls, hits := r.controls(vs)
	dragBar := r.dragBar(vs)
	status := r.status(vs)

	used := lipgloss.Height(header) + lipgloss.Height(controls) + lipgloss.Height(dragBar) +
		lipgloss.Height(status)
	if vs.Help != "" {
		used += lipgloss.Height(vs.Help)
	}
	// two border rows per card
	trackHeight := vs.Height - used - 2
	if trackHeight < minTrackHeight {
		trackHeight = minTrackHeight
	}
	track := r.track(vs, trackHeight)

	var f Frame
	var sections []string
	row := 0
	add := func(s string) int {
		start := row
		sections = append(sections, s)
		row += lipgloss.Height(s)
		return start
	}

	add(header)
	if vs.DotsPosition == DotsTop {
		r.placeHits(&f, hits, add(controls))
	}
	f.TrackTop = add(track)
	f.TrackBottom = row
	if vs.DotsPosition != DotsTop {
		r.placeHits(&f, hits, add(controls))
	}
	add(dragBar)
	add(status)
	if vs.Help != "" {
		add(vs.Help)
	}

	f.Content = lipgloss.NewStyle().
		PaddingLeft(leftPad).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return f
}

func (r *Renderer) placeHits(f *Frame, hits []Hit, row int) {
	for _, h := range hits {
		h.Row = row
		h.X0 += leftPad
		h.X1 += leftPad
		f.Hits = append(f.Hits, h)
	}
}

func (r *Renderer) header(vs ViewState) string {
	title := r.styles.Title.Render("ezslider")
	if vs.Heading != "" {
		title = r.styles.Title.Render("ezslider · " + vs.Heading)
	}
	if vs.Position == "" {
		return title
	}

	// right-align the position on the title line
	lines := strings.Split(title, "\n")
	pos := r.styles.Position.Render(vs.Position)
	gap := vs.Width - leftPad - lipgloss.Width(lines[0]) - lipgloss.Width(pos)
	if gap < 2 {
		gap = 2
	}
	lines[0] = lines[0] + strings.Repeat(" ", gap) + pos
	return strings.Join(lines, "\n")
}

type segment struct {
	text string
	hits []Hit // X relative to the segment start
}

// controls renders the dots and nav buttons on a single row
func (r *Renderer) controls(vs ViewState) (string, []Hit) {
	prev := r.button(vs.PrevLabel, vs.PrevEnabled, HitPrev)
	next := r.button(vs.NextLabel, vs.NextEnabled, HitNext)
	dots := r.dots(vs.Dots)

	var order []segment
	switch vs.NavOrder {
	case NavBefore:
		order = []segment{prev, next, dots}
	case NavAfter:
		order = []segment{dots, prev, next}
	default:
		order = []segment{prev, dots, next}
	}

	var b strings.Builder
	var hits []Hit
	x := 0
	for i, seg := range order {
		if seg.text == "" {
			continue
		}
		if i > 0 && x > 0 {
			b.WriteString("  ")
			x += 2
		}
		for _, h := range seg.hits {
			h.X0 += x
			h.X1 += x
			hits = append(hits, h)
		}
		b.WriteString(seg.text)
		x += lipgloss.Width(seg.text)
	}
	return b.String(), hits
}

func (r *Renderer) button(label string, enabled bool, kind HitKind) segment {
	text := "[ " + label + " ]"
	if !enabled {
		return segment{text: r.styles.ButtonDisabled.Render(text)}
	}
	w := lipgloss.Width(text)
	return segment{
		text: r.styles.Button.Render(text),
		hits: []Hit{{X0: 0, X1: w, Kind: kind, Dot: -1}},
	}
}

func (r *Renderer) dots(dots []bool) segment {
	if len(dots) == 0 {
		return segment{}
	}
	parts := make([]string, len(dots))
	hits := make([]Hit, len(dots))
	for i, current := range dots {
		if current {
			parts[i] = r.styles.DotCurrent.Render("●")
		} else {
			parts[i] = r.styles.Dot.Render("○")
		}
		hits[i] = Hit{X0: i * 2, X1: i*2 + 1, Kind: HitDot, Dot: i}
	}
	return segment{text: strings.Join(parts, " "), hits: hits}
}

func (r *Renderer) track(vs ViewState, height int) string {
	if len(vs.Cards) == 0 {
		return r.styles.Dim.Render("(no slides)")
	}

	n := len(vs.Cards)
	outer := (vs.Width - leftPad - cardGap*(n-1)) / n
	// border and horizontal padding take four cells
	text := outer - 4
	if text < minCardText {
		text = minCardText
	}

	cards := make([]string, 0, n*2)
	for i, c := range vs.Cards {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, r.card(c, text, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (r *Renderer) card(c Card, width, height int) string {
	var body strings.Builder
	body.WriteString(r.styles.CardTitle.Render(c.Title))
	for _, line := range c.Lines {
		body.WriteString("\n")
		body.WriteString(line)
	}

	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(body.String()), "\n")
	if len(lines) > height {
		lines = lines[:height]
		lines[height-1] = r.styles.Dim.Render("…")
	}

	style := r.styles.Card
	switch {
	case c.Current:
		style = r.styles.CardCurrent
	case c.Clone:
		style = r.styles.CardClone
	}
	return style.Width(width + 2).Height(height).Render(strings.Join(lines, "\n"))
}

// dragBar shows the live displacement around a centre mark
func (r *Renderer) dragBar(vs ViewState) string {
	if !vs.Dragging {
		return ""
	}

	width := vs.Width - leftPad - 20
	if width > 41 {
		width = 41
	}
	if width < 11 {
		width = 11
	}
	center := width / 2
	offset := vs.DragOffset
	if offset > center {
		offset = center
	}
	if offset < -center {
		offset = -center
	}

	cells := []rune(strings.Repeat("─", width))
	cells[center] = '┼'
	lo, hi := center, center+offset
	if offset < 0 {
		lo, hi = center+offset, center
	}
	for i := lo; i <= hi; i++ {
		if i != center {
			cells[i] = '━'
		}
	}

	label := "release to cancel"
	style := r.styles.DragBar
	if vs.DragProgress >= 1 {
		style = r.styles.DragArmed
		if vs.DragOffset > 0 {
			label = "release for previous"
		} else {
			label = "release for next"
		}
	}
	return style.Render(fmt.Sprintf("%s  %s", string(cells), label))
}

func (r *Renderer) status(vs ViewState) string {
	switch {
	case vs.Status != "" && vs.StatusIsError:
		return r.styles.StatusError.Render(vs.Status)
	case vs.Transitioning:
		if vs.Status != "" {
			return r.styles.StatusMoving.Render("» " + vs.Status)
		}
		return r.styles.StatusMoving.Render("»")
	case vs.Inert:
		return r.styles.Status.Render("Nothing to slide")
	default:
		return r.styles.Status.Render(vs.Status)
	}
}
