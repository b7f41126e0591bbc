// Package app holds the interactive session shared by the front ends: the
// slider values, display options, the current geometry and the commands
// that change them.
package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/philipparndt/gointubate/pkg/airway"
	"github.com/philipparndt/gointubate/pkg/controls"
	"github.com/philipparndt/gointubate/pkg/render"
	"github.com/philipparndt/gointubate/pkg/store"
)

// Config wires a session to its collaborators. Zero fields get defaults.
type Config struct {
	Store     store.Store
	StoreName string
	Presets   *controls.PresetBook
	View      render.View
	Logger    *slog.Logger
}

// Session is the state behind one window. It is not safe for concurrent use;
// front ends call it from their event loop.
type Session struct {
	Values      controls.Values
	Options     render.Options
	View        render.View
	Interaction InteractionState

	// the current geometry, replaced on every change
	geometry airway.Geometry
	err      error

	store     store.Store
	storeName string
	presets   *controls.PresetBook
	log       *slog.Logger
}

// NewSession returns a session at the default slider positions with the
// geometry already solved
func NewSession(cfg Config) *Session {
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.StoreName == "" {
		cfg.StoreName = store.DefaultName
	}
	if cfg.Presets == nil {
		cfg.Presets = controls.NewPresetBook()
	}
	if cfg.View.Factor == 0 {
		cfg.View = render.DefaultView()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Session{
		View:      cfg.View,
		store:     cfg.Store,
		storeName: cfg.StoreName,
		presets:   cfg.Presets,
		log:       cfg.Logger,
	}
	s.restore(store.DefaultSnapshot())
	return s
}

// Geometry returns the geometry of the current values
func (s *Session) Geometry() airway.Geometry {
	return s.geometry
}

// Err returns the domain problem of the current values, nil when the
// geometry is fully valid
func (s *Session) Err() error {
	return s.err
}

// Presets returns the names offered for loading
func (s *Session) Presets() []string {
	return s.presets.Names()
}

// Recompute solves the current values. Domain problems are logged and kept
// in Err; the geometry is stored regardless so what is finite can be drawn.
func (s *Session) Recompute() {
	s.geometry, s.err = airway.SolveChecked(s.Values.Parameters())
	if s.err == nil {
		return
	}

	var domainErr *airway.DomainError
	if errors.As(s.err, &domainErr) {
		s.log.Warn("geometry out of domain", "field", domainErr.Field, "err", domainErr.Err)
		return
	}
	s.log.Warn("geometry out of domain", "err", s.err)
}

// SetValue moves one slider, clamped to its range
func (s *Session) SetValue(id string, value float64) error {
	slider, ok := controls.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", controls.ErrUnknownSlider, id)
	}
	if err := s.Values.Set(id, slider.Clamp(value)); err != nil {
		return err
	}
	s.Recompute()
	return nil
}

// Adjust moves a slider by amount steps
func (s *Session) Adjust(id string, amount float64) {
	if err := s.Values.Adjust(id, amount); err != nil {
		s.log.Error("adjust failed", "slider", id, "err", err)
		return
	}
	s.Recompute()
}

// SetShowLabels toggles the object labels
func (s *Session) SetShowLabels(show bool) {
	s.Options.ShowLabels = show
}

// SetShowHelp toggles the drag hint arrows
func (s *Session) SetShowHelp(show bool) {
	s.Options.ShowHelp = show
}

// Reset returns every slider and toggle to its default
func (s *Session) Reset() {
	s.restore(store.DefaultSnapshot())
	s.log.Info("reset to defaults")
}

// Snapshot captures the values and toggles for saving
func (s *Session) Snapshot() store.Snapshot {
	return store.Snapshot{
		Values:     s.Values,
		ShowLabels: s.Options.ShowLabels,
		ShowHelp:   s.Options.ShowHelp,
	}
}

func (s *Session) restore(snap store.Snapshot) {
	s.Values = snap.Values.Clamp()
	s.Options.ShowLabels = snap.ShowLabels
	s.Options.ShowHelp = snap.ShowHelp
	s.Recompute()
}

// Save writes the current snapshot to the store
func (s *Session) Save() Notice {
	if err := s.store.Save(s.storeName, s.Snapshot()); err != nil {
		s.log.Error("save failed", "name", s.storeName, "err", err)
		return Notice{Kind: NoticeError, Message: fmt.Sprintf("Could not save configuration: %v", err)}
	}
	s.log.Info("configuration saved", "name", s.storeName)
	return Notice{Kind: NoticeSuccess, Message: "Configuration saved successfully!"}
}

// Load restores the saved snapshot. When nothing is saved the state is left
// unchanged.
func (s *Session) Load() Notice {
	snap, err := s.store.Load(s.storeName)
	if errors.Is(err, store.ErrNotFound) {
		return Notice{Kind: NoticeError, Message: "No saved configuration found."}
	}
	if err != nil {
		s.log.Error("load failed", "name", s.storeName, "err", err)
		return Notice{Kind: NoticeError, Message: fmt.Sprintf("Could not load configuration: %v", err)}
	}
	s.restore(snap)
	s.log.Info("configuration loaded", "name", s.storeName)
	return Notice{Kind: NoticeSuccess, Message: "Configuration loaded."}
}

// LoadPreset replaces the slider values with a preset merged over the
// defaults. Display toggles are kept.
func (s *Session) LoadPreset(name string) Notice {
	values, err := s.presets.Values(name)
	if err != nil {
		return Notice{Kind: NoticeError, Message: "Preset not found!"}
	}
	s.Values = values.Clamp()
	s.Recompute()
	return Notice{Kind: NoticeInfo, Message: "Loaded preset: " + title(name)}
}

// Image renders the current geometry
func (s *Session) Image(size image.Point) (*image.RGBA, error) {
	return render.Image(s.geometry, s.Options, s.View, size)
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
