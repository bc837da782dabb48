package logic

import "ezslider/internal/domain"

// Bounds describes the index space a move is resolved against
type Bounds struct {
	Total   int
	Visible int
	Loop    bool
	Rewind  bool
}

// MaxIndex returns the highest valid current index
func (b Bounds) MaxIndex() int {
	if b.Loop {
		return b.Total - 1
	}
	max := b.Total - b.Visible
	if max < 0 {
		return 0
	}
	return max
}

// Navigable reports whether any move can ever be accepted
func (b Bounds) Navigable() bool {
	return b.Total >= 2 && b.Visible >= 1
}

// Move is either a relative step or an absolute jump
type Move struct {
	Delta  int
	Target int
	Jump   bool
}

// Step returns a relative move
func Step(delta int) Move {
	return Move{Delta: delta}
}

// Jump returns an absolute move to target
func Jump(target int) Move {
	return Move{Target: target, Jump: true}
}

// Resolve maps current and a move to the resolved index. The second return is
// false when the move is rejected; callers must leave their state untouched.
// Loop takes precedence over rewind.
func Resolve(current int, m Move, b Bounds) (int, bool) {
	if !b.Navigable() {
		return current, false
	}
	if m.Jump {
		return resolveJump(current, m.Target, b)
	}
	return resolveStep(current, m.Delta, b)
}

func resolveJump(current, target int, b Bounds) (int, bool) {
	if target < 0 || target > b.MaxIndex() {
		return current, false
	}
	return target, true
}

func resolveStep(current, delta int, b Bounds) (int, bool) {
	max := b.MaxIndex()
	candidate := current + delta
	if candidate >= 0 && candidate <= max {
		return candidate, true
	}

	switch {
	case b.Loop:
		return wrap(candidate, b.Total), true
	case b.Rewind:
		if max == 0 {
			return current, false
		}
		if candidate < 0 {
			return max, true
		}
		return 0, true
	default:
		return current, false
	}
}

// wrap returns i modulo n in [0, n)
func wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// Clamp limits index to [0, max]
func Clamp(index, max int) int {
	if index < 0 {
		return 0
	}
	if index > max {
		return max
	}
	return index
}

// DirectionOf classifies a move for ChangeEvent reporting
func DirectionOf(m Move) domain.Direction {
	switch {
	case m.Jump:
		return domain.DirectionJump
	case m.Delta < 0:
		return domain.DirectionPrev
	default:
		return domain.DirectionNext
	}
}
