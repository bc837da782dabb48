package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseState() ViewState {
	return ViewState{
		Width:       100,
		Height:      24,
		Heading:     "tour.html",
		Position:    "2/4",
		Cards:       []Card{{Logical: 1, Title: "Lamp Room", Lines: []string{"still turning"}, Current: true}},
		Dots:        []bool{false, true, false, false},
		PrevLabel:   "Back",
		NextLabel:   "Onward",
		PrevEnabled: true,
		NextEnabled: true,
		Status:      "Slide 2 of 4",
	}
}

func TestComposeContent(t *testing.T) {
	f := NewRenderer().Compose(baseState())

	assert.Contains(t, f.Content, "ezslider · tour.html")
	assert.Contains(t, f.Content, "2/4")
	assert.Contains(t, f.Content, "Lamp Room")
	assert.Contains(t, f.Content, "still turning")
	assert.Contains(t, f.Content, "[ Back ]")
	assert.Contains(t, f.Content, "○ ● ○ ○")
	assert.Contains(t, f.Content, "Slide 2 of 4")
	assert.LessOrEqual(t, lipgloss.Height(f.Content), 24)
}

func TestHitsMatchRenderedControls(t *testing.T) {
	f := NewRenderer().Compose(baseState())
	lines := strings.Split(f.Content, "\n")

	var kinds []HitKind
	for _, h := range f.Hits {
		kinds = append(kinds, h.Kind)
		require.Less(t, h.Row, len(lines))
		row := []rune(lines[h.Row])
		require.LessOrEqual(t, h.X1, len(row))
		cell := string(row[h.X0:h.X1])
		switch h.Kind {
		case HitPrev:
			assert.Equal(t, "[ Back ]", cell)
		case HitNext:
			assert.Equal(t, "[ Onward ]", cell)
		case HitDot:
			assert.Contains(t, []string{"○", "●"}, cell)
		}
	}
	assert.Equal(t, []HitKind{HitPrev, HitDot, HitDot, HitDot, HitDot, HitNext}, kinds)
	assert.Greater(t, f.Hits[0].Row, f.TrackTop, "dots default to below the track")
}

func TestNavOrder(t *testing.T) {
	vs := baseState()
	vs.NavOrder = NavAfter
	f := NewRenderer().Compose(vs)

	assert.Equal(t, HitDot, f.Hits[0].Kind)
	assert.Equal(t, HitNext, f.Hits[len(f.Hits)-1].Kind)

	vs.NavOrder = NavBefore
	f = NewRenderer().Compose(vs)
	assert.Equal(t, HitPrev, f.Hits[0].Kind)
	assert.Equal(t, HitNext, f.Hits[1].Kind)
}

func TestDisabledButtonsAreNotClickable(t *testing.T) {
	vs := baseState()
	vs.PrevEnabled = false
	f := NewRenderer().Compose(vs)

	for _, h := range f.Hits {
		assert.NotEqual(t, HitPrev, h.Kind)
	}
	assert.Contains(t, f.Content, "[ Back ]", "still drawn, just inactive")
}

func TestHitAt(t *testing.T) {
	f := Frame{
		TrackTop:    2,
		TrackBottom: 8,
		Hits:        []Hit{{Row: 9, X0: 1, X1: 6, Kind: HitPrev, Dot: -1}},
	}

	assert.Equal(t, HitPrev, f.HitAt(3, 9).Kind)
	assert.Equal(t, HitNone, f.HitAt(6, 9).Kind)
	assert.Equal(t, HitTrack, f.HitAt(40, 5).Kind)
	assert.Equal(t, HitNone, f.HitAt(40, 8).Kind)
}

func TestDragBar(t *testing.T) {
	vs := baseState()
	vs.Dragging = true
	vs.DragOffset = -3
	vs.DragProgress = 0.6
	assert.Contains(t, NewRenderer().Compose(vs).Content, "release to cancel")

	vs.DragOffset = -6
	vs.DragProgress = 1.2
	assert.Contains(t, NewRenderer().Compose(vs).Content, "release for next")

	vs.DragOffset = 6
	assert.Contains(t, NewRenderer().Compose(vs).Content, "release for previous")
}

func TestInertStatus(t *testing.T) {
	vs := baseState()
	vs.Inert = true
	vs.Status = ""
	vs.Dots = nil
	vs.PrevEnabled, vs.NextEnabled = false, false

	f := NewRenderer().Compose(vs)
	assert.Contains(t, f.Content, "Nothing to slide")
	assert.Empty(t, f.Hits)
}
