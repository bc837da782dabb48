package ui

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"ezslider/internal/config"
	"ezslider/internal/domain"
	"ezslider/internal/eventbus"
	"ezslider/internal/navigation"
	"ezslider/internal/ui/adapters"
	"ezslider/internal/ui/input"
	inputtypes "ezslider/internal/ui/input/types"
	"ezslider/internal/ui/viewmodels"
	"ezslider/internal/ui/views"
)

const (
	// cellWidthPx converts terminal columns into the pixel offsets the
	// gesture threshold is expressed in
	cellWidthPx = 8
	// minCardCells is the narrowest card before fewer items are shown
	minCardCells = 24
)

// Model represents the UI state
type Model struct {
	bus eventbus.EventBus
	nav *navigation.Service
	res *config.Resolved

	// UI-specific state
	width         int
	height        int
	help          help.Model
	inPagerMode   bool
	trackPhysical int // slot the viewport shows, may be a clone mid-loop
	transitionSeq int
	dragging      bool
	dragPx        float64
	pending       []tea.Cmd // commands queued by bus handlers during Update

	// Handlers
	sync         *adapters.SyncAdapter
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps
	frame        views.Frame
	unsubscribe  []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. nav must publish on bus.
func NewModel(bus eventbus.EventBus, nav *navigation.Service, res *config.Resolved, heading string) *Model {
	helpModel := help.New()

	st := nav.State()
	m := &Model{
		bus:           bus,
		nav:           nav,
		res:           res,
		help:          helpModel,
		trackPhysical: st.PhysicalIndex,
		sync:          adapters.NewSyncAdapter(st),
		viewModel:     viewmodels.NewViewModel(res, heading),
		renderer:      views.NewRenderer(),
		inputHandler:  input.New(),
		pager:         NewPagerOps(nil),
	}

	m.viewModel.ResetDots(m.sync.DotCount())
	adapters.Apply(m.viewModel, m.sync.Initial(st))
	m.subscribe()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

func (m *Model) subscribe() {
	m.unsubscribe = append(m.unsubscribe,
		m.nav.OnChange(m.onSlideChanged),
		m.bus.Subscribe(eventbus.EventTransitionStarted, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.TransitionStartedEvent); ok {
				m.onTransitionStarted(ev)
			}
		}),
		m.bus.Subscribe(eventbus.EventReanchored, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ReanchoredEvent); ok {
				m.trackPhysical = ev.Physical
			}
		}),
		m.bus.Subscribe(eventbus.EventGestureStarted, func(e eventbus.DomainEvent) {
			m.dragging = true
			m.dragPx = 0
		}),
		m.bus.Subscribe(eventbus.EventGestureMoved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.GestureMovedEvent); ok {
				m.dragPx = ev.DisplacementPx
			}
		}),
		m.bus.Subscribe(eventbus.EventGestureResolved, func(e eventbus.DomainEvent) {
			m.dragging = false
			m.dragPx = 0
		}),
		m.bus.Subscribe(eventbus.EventSliderReconfigured, func(e eventbus.DomainEvent) {
			m.onReconfigured()
		}),
	)
}

// Close detaches the model from the bus
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

func (m *Model) onSlideChanged(ev domain.ChangeEvent) {
	adapters.Apply(m.viewModel, m.sync.Compute(ev))
	m.trackPhysical = m.nav.State().PhysicalIndex
	m.viewModel.SetStatus(fmt.Sprintf("Slide %d of %d", ev.NewIndex+1, m.nav.State().TotalSlides), false)
}

func (m *Model) onTransitionStarted(ev domain.TransitionStartedEvent) {
	m.trackPhysical = ev.Physical
	m.transitionSeq++
	m.viewModel.SetStatus(fmt.Sprintf("Sliding to %d", ev.Target+1), false)

	d := m.nav.Config().TransitionDuration
	if d <= 0 {
		return
	}
	seq := m.transitionSeq
	m.pending = append(m.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	}))
}

func (m *Model) onReconfigured() {
	st := m.nav.State()
	// a pending animation tick belongs to the old layout
	m.transitionSeq++
	m.trackPhysical = st.PhysicalIndex
	m.sync.Reset(st)
	m.viewModel.ResetDots(m.sync.DotCount())
	adapters.Apply(m.viewModel, m.sync.Initial(st))
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fitItemsToWidth()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		if !m.inPagerMode {
			m.handleMouse(msg)
		}

	case tea.BlurMsg:
		// the pointer is gone; a half-finished drag must not commit
		m.nav.CancelGesture()

	default:
		if cmd := m.handleNonKeyboardMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transitionDoneMsg:
		if msg.seq == m.transitionSeq {
			m.nav.CompleteTransition()
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case slidePagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Error showing slide %d in pager: %v", msg.index, msg.err)
			m.viewModel.SetStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Error showing help in pager: %v", msg.err)
			m.viewModel.SetStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}
	}
	return nil
}

// fitItemsToWidth shows fewer items per view when the terminal is too narrow
// for the configured count, and restores them when it grows again
func (m *Model) fitItemsToWidth() {
	want := m.res.Slider.ItemsPerView
	if fit := (m.width - 1) / minCardCells; fit < want {
		want = fit
	}
	if want < 1 {
		want = 1
	}

	st := m.nav.State()
	if want == st.VisibleCount {
		return
	}
	if err := m.nav.Reconfigure(domain.SlideSet{TotalSlides: st.TotalSlides, VisibleCount: want}); err != nil {
		log.Printf("Resize: keeping %d items per view: %v", st.VisibleCount, err)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		var ok bool
		switch a.Direction {
		case "prev":
			ok = m.nav.Prev()
		case "next":
			ok = m.nav.Next()
		case "first":
			ok = m.nav.First()
		case "last":
			ok = m.nav.Last()
		}
		if !ok {
			m.explainRejection(a.Direction)
		}

	case inputtypes.GoToAction:
		m.nav.GoTo(a.Index)

	case inputtypes.CancelGestureAction:
		m.nav.CancelGesture()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.OpenSlideAction:
		return m.fetchSlidePager(m.nav.State().CurrentIndex)

	case inputtypes.ShowHelpPagerAction:
		st := m.nav.State()
		return m.fetchHelpPager(NewHelpRenderer(st.Loop, st.Rewind).RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) explainRejection(direction string) {
	st := m.nav.State()
	switch {
	case st.Phase == domain.PhaseInert:
		m.viewModel.SetStatus("Nothing to slide", false)
	case direction == "prev" && st.CurrentIndex == 0:
		m.viewModel.SetStatus("Already at the first slide", false)
	case direction == "next" && st.CurrentIndex == st.MaxIndex:
		m.viewModel.SetStatus("Already at the last slide", false)
	}
}

// handleMouse routes presses to controls or the drag gesture
func (m *Model) handleMouse(msg tea.MouseMsg) {
	offset := float64(msg.X * cellWidthPx)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if !m.dragging {
				m.nav.Prev()
			}
			return
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if !m.dragging {
				m.nav.Next()
			}
			return
		case tea.MouseButtonLeft:
		default:
			return
		}

		hit := m.frame.HitAt(msg.X, msg.Y)
		switch hit.Kind {
		case views.HitPrev:
			m.nav.Prev()
		case views.HitNext:
			m.nav.Next()
		case views.HitDot:
			m.nav.GoTo(hit.Dot)
		case views.HitTrack:
			m.nav.StartGesture(domain.PointerMouse, offset)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			m.nav.UpdateGesture(offset)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.nav.UpdateGesture(offset)
			m.nav.EndGesture()
		}
	}
}

// fetchSlidePager returns a command that shows a slide using ov pager
func (m *Model) fetchSlidePager(index int) tea.Cmd {
	if m.program == nil {
		return nil
	}
	title := m.res.Slides[index].Title
	if title == "" {
		title = fmt.Sprintf("Slide %d", index+1)
	}
	content := slideContent(title, m.viewModel.SlideLines(index))

	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return slidePagerMsg{index: index, err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help.View(m.inputHandler.Keys()))

	state := m.viewModel.BuildViewState(m.track())
	m.frame = m.renderer.Compose(state)
	return m.frame.Content
}

func (m *Model) track() viewmodels.Track {
	t := viewmodels.Track{
		State:    m.nav.State(),
		Physical: m.trackPhysical,
		Window:   m.nav.Window(m.trackPhysical),
		Layout:   m.nav.Layout(),
		Dragging: m.dragging,
	}
	if m.dragging {
		t.DragCells = int(m.dragPx / cellWidthPx)
		threshold := m.nav.Config().DragThresholdPx
		switch {
		case threshold > 0:
			t.DragProgress = math.Abs(m.dragPx) / threshold
		case m.dragPx != 0:
			t.DragProgress = 1
		}
	}
	return t
}

// DotCount implements inputtypes.Context
func (m *Model) DotCount() int {
	return m.sync.DotCount()
}

// Dragging implements inputtypes.Context
func (m *Model) Dragging() bool {
	return m.dragging
}
