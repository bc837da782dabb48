package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"ezslider/internal/eventbus"
)

// DragOptions selects the pointer sources allowed to drag
type DragOptions struct {
	Mouse *bool `toml:"mouse,omitempty"`
	Touch *bool `toml:"touch,omitempty"`
}

// Options are user-supplied slider settings. Nil fields mean "not set" so
// several layers can be merged without clobbering each other.
type Options struct {
	Target        string       `toml:"target,omitempty"`
	Dots          string       `toml:"dots,omitempty"` // selector of the dots container
	Nav           string       `toml:"nav,omitempty"`  // selector scoping [data-ezs-nav] buttons
	Items         *int         `toml:"items,omitempty"`
	Loop          *bool        `toml:"loop,omitempty"`
	Rewind        *bool        `toml:"rewind,omitempty"`
	StartIndex    *int         `toml:"start_index,omitempty"` // 1-based
	Drag          *DragOptions `toml:"drag,omitempty"`
	DragThreshold *float64     `toml:"drag_threshold,omitempty"`
	TransitionMs  *int         `toml:"transition_ms,omitempty"`
	FreezeFull    *bool        `toml:"freeze_full,omitempty"`
	DotsPosition  string       `toml:"dots_position,omitempty"` // top | bottom
	NavOrder      string       `toml:"nav_order,omitempty"`     // split | before | after
}

// ConfigService handles configuration files
type ConfigService interface {
	Load() (*Options, error)
	LoadFromPath(path string) (*Options, error)
	SaveToPath(opts *Options, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "ezslider", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the user-level options. A missing file yields empty options.
func (cs *configService) Load() (*Options, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return &Options{}, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads options from a TOML file
func (cs *configService) LoadFromPath(path string) (*Options, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var opts Options
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
	return &opts, nil
}

// SaveToPath writes options to a TOML file
func (cs *configService) SaveToPath(opts *Options, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// Defaults returns a fresh copy of the documented defaults. Callers own the
// result; nothing shared is ever mutated.
func Defaults() Options {
	return Options{
		Items:      Int(1),
		Loop:       Bool(false),
		Rewind:     Bool(false),
		StartIndex: Int(1),
		Drag: &DragOptions{
			Mouse: Bool(true),
			Touch: Bool(true),
		},
		DragThreshold: Float(40),
		TransitionMs:  Int(250),
		FreezeFull:    Bool(true),
		DotsPosition:  "bottom",
		NavOrder:      "split",
	}
}

// Merge returns base overlaid with every field set in override. Neither
// argument is modified.
func Merge(base, override Options) Options {
	out := base.Clone()
	if override.Target != "" {
		out.Target = override.Target
	}
	if override.Dots != "" {
		out.Dots = override.Dots
	}
	if override.Nav != "" {
		out.Nav = override.Nav
	}
	if override.Items != nil {
		out.Items = Int(*override.Items)
	}
	if override.Loop != nil {
		out.Loop = Bool(*override.Loop)
	}
	if override.Rewind != nil {
		out.Rewind = Bool(*override.Rewind)
	}
	if override.StartIndex != nil {
		out.StartIndex = Int(*override.StartIndex)
	}
	if override.Drag != nil {
		drag := DragOptions{}
		if out.Drag != nil {
			drag = *out.Drag
		}
		if override.Drag.Mouse != nil {
			drag.Mouse = Bool(*override.Drag.Mouse)
		}
		if override.Drag.Touch != nil {
			drag.Touch = Bool(*override.Drag.Touch)
		}
		out.Drag = &drag
	}
	if override.DragThreshold != nil {
		out.DragThreshold = Float(*override.DragThreshold)
	}
	if override.TransitionMs != nil {
		out.TransitionMs = Int(*override.TransitionMs)
	}
	if override.FreezeFull != nil {
		out.FreezeFull = Bool(*override.FreezeFull)
	}
	if override.DotsPosition != "" {
		out.DotsPosition = override.DotsPosition
	}
	if override.NavOrder != "" {
		out.NavOrder = override.NavOrder
	}
	return out
}

// Clone returns a deep copy of o
func (o Options) Clone() Options {
	out := o
	if o.Items != nil {
		out.Items = Int(*o.Items)
	}
	if o.Loop != nil {
		out.Loop = Bool(*o.Loop)
	}
	if o.Rewind != nil {
		out.Rewind = Bool(*o.Rewind)
	}
	if o.StartIndex != nil {
		out.StartIndex = Int(*o.StartIndex)
	}
	if o.Drag != nil {
		drag := DragOptions{}
		if o.Drag.Mouse != nil {
			drag.Mouse = Bool(*o.Drag.Mouse)
		}
		if o.Drag.Touch != nil {
			drag.Touch = Bool(*o.Drag.Touch)
		}
		out.Drag = &drag
	}
	if o.DragThreshold != nil {
		out.DragThreshold = Float(*o.DragThreshold)
	}
	if o.TransitionMs != nil {
		out.TransitionMs = Int(*o.TransitionMs)
	}
	if o.FreezeFull != nil {
		out.FreezeFull = Bool(*o.FreezeFull)
	}
	return out
}

// Int returns a pointer to v
func Int(v int) *int { return &v }

// Bool returns a pointer to v
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v
func Float(v float64) *float64 { return &v }

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
