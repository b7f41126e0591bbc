// Package store persists named airway configurations.
package store

import (
	"errors"

	"github.com/philipparndt/gointubate/pkg/controls"
)

// DefaultName is the blob name used when none is given
const DefaultName = "intubationConfig"

// ErrNotFound is returned by Load when no configuration is saved under a name
var ErrNotFound = errors.New("no saved configuration found")

// Snapshot is a saved configuration: every slider plus the display toggles.
// It encodes as one flat object keyed by slider id.
type Snapshot struct {
	controls.Values
	ShowLabels bool `json:"showLabels" yaml:"showLabels"`
	ShowHelp   bool `json:"showHelp" yaml:"showHelp"`
}

// DefaultSnapshot is the state after a reset
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Values:     controls.Defaults(),
		ShowLabels: true,
		ShowHelp:   true,
	}
}

// Store saves and loads snapshots by name
type Store interface {
	Save(name string, s Snapshot) error
	Load(name string) (Snapshot, error)
}
