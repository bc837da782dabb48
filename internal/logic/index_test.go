package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ezslider/internal/domain"
)

func TestResolveStep(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		bounds  Bounds
		want    int
		ok      bool
	}{
		{"next in range", 0, 1, Bounds{Total: 5, Visible: 1}, 1, true},
		{"prev in range", 3, -1, Bounds{Total: 5, Visible: 1}, 2, true},
		{"next at end clamps", 4, 1, Bounds{Total: 5, Visible: 1}, 4, false},
		{"prev at start clamps", 0, -1, Bounds{Total: 5, Visible: 1}, 0, false},
		{"visible narrows range", 2, 1, Bounds{Total: 5, Visible: 3}, 2, false},
		{"rewind next", 3, 1, Bounds{Total: 4, Visible: 1, Rewind: true}, 0, true},
		{"rewind prev", 0, -1, Bounds{Total: 4, Visible: 1, Rewind: true}, 3, true},
		{"rewind respects visible", 0, -1, Bounds{Total: 6, Visible: 2, Rewind: true}, 4, true},
		{"loop next wraps", 4, 1, Bounds{Total: 5, Visible: 1, Loop: true}, 0, true},
		{"loop prev wraps", 0, -1, Bounds{Total: 5, Visible: 1, Loop: true}, 4, true},
		{"loop ignores visible for range", 3, 1, Bounds{Total: 5, Visible: 3, Loop: true}, 4, true},
		{"loop beats rewind", 4, 1, Bounds{Total: 5, Visible: 2, Loop: true, Rewind: true}, 0, true},
		{"loop beats rewind backwards", 0, -1, Bounds{Total: 5, Visible: 2, Loop: true, Rewind: true}, 4, true},
		{"single slide is inert", 0, 1, Bounds{Total: 1, Visible: 1, Loop: true}, 0, false},
		{"rewind with no range rejects", 0, 1, Bounds{Total: 3, Visible: 3, Rewind: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.current, Step(tt.delta), tt.bounds)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveJump(t *testing.T) {
	tests := []struct {
		name   string
		target int
		bounds Bounds
		want   int
		ok     bool
	}{
		{"valid", 2, Bounds{Total: 5, Visible: 1}, 2, true},
		{"last valid with visible", 3, Bounds{Total: 5, Visible: 2}, 3, true},
		{"past last with visible", 4, Bounds{Total: 5, Visible: 2}, 1, false},
		{"negative", -1, Bounds{Total: 5, Visible: 1}, 1, false},
		{"loop allows any logical", 4, Bounds{Total: 5, Visible: 2, Loop: true}, 4, true},
		{"loop rejects total", 5, Bounds{Total: 5, Visible: 1, Loop: true}, 1, false},
		{"rewind does not rescue jumps", 9, Bounds{Total: 5, Visible: 1, Rewind: true}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(1, Jump(tt.target), tt.bounds)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxIndex(t *testing.T) {
	assert.Equal(t, 4, Bounds{Total: 5, Visible: 1}.MaxIndex())
	assert.Equal(t, 2, Bounds{Total: 5, Visible: 3}.MaxIndex())
	assert.Equal(t, 4, Bounds{Total: 5, Visible: 3, Loop: true}.MaxIndex())
	assert.Equal(t, 0, Bounds{Total: 2, Visible: 4}.MaxIndex())
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, domain.DirectionNext, DirectionOf(Step(1)))
	assert.Equal(t, domain.DirectionPrev, DirectionOf(Step(-1)))
	assert.Equal(t, domain.DirectionJump, DirectionOf(Jump(0)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 4))
	assert.Equal(t, 4, Clamp(9, 4))
	assert.Equal(t, 2, Clamp(2, 4))
}
