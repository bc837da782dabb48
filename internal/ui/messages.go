package ui

// transitionDoneMsg fires when the slide animation for seq has run its course
type transitionDoneMsg struct {
	seq int
}

// slidePagerMsg contains the result of showing a slide in the pager
type slidePagerMsg struct {
	index int
	err   error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
