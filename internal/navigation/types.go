package navigation

import "ezslider/internal/domain"

// state holds everything the service mutates. It is never shared; readers get
// a domain.NavigationState snapshot.
type state struct {
	current  int
	physical int
	phase    domain.Phase

	// in-flight transition, valid while phase == PhaseTransitioning
	from        int
	pending     int
	pendingPhys int
	pendingDir  domain.Direction
}

// Listener receives committed slide changes
type Listener func(domain.ChangeEvent)
