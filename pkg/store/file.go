package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// DefaultDir is where snapshots live unless configured otherwise
const DefaultDir = "~/.gointubate"

// FileStore keeps one JSON file per name in a directory
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. A leading ~ is expanded to the
// user's home directory; an empty dir means DefaultDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store directory %s: %w", dir, err)
	}
	return &FileStore{dir: expanded}, nil
}

// Dir returns the resolved directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file a name is stored in
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save writes the snapshot through a temporary file so a reader never sees a
// partial document
func (s *FileStore) Save(name string, snap Snapshot) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("failed to store configuration: %w", err)
	}
	return nil
}

// Load reads a snapshot. Keys missing from the file keep their defaults.
func (s *FileStore) Load(name string) (Snapshot, error) {
	if err := checkName(name); err != nil {
		return Snapshot{}, err
	}
	return ReadFile(s.Path(name))
}

// ReadFile decodes a snapshot file at an arbitrary path
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Decode(data)
}

// Decode parses a snapshot document over the defaults. Values may be
// numbers and booleans or their string forms, as browser storage keeps
// slider values as strings.
func Decode(data []byte) (Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal(unquoteValues(data), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return snap, nil
}

// unquoteValues rewrites string values holding a finite number or a boolean
// as bare JSON literals. Anything that is not an object is returned as is.
func unquoteValues(data []byte) []byte {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return data
	}

	changed := false
	for key, raw := range fields {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			fields[key] = json.RawMessage(strconv.FormatFloat(f, 'g', -1, 64))
			changed = true
		} else if b, err := strconv.ParseBool(text); err == nil {
			fields[key] = json.RawMessage(strconv.FormatBool(b))
			changed = true
		}
	}
	if !changed {
		return data
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return data
	}
	return out
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid configuration name %q", name)
	}
	return nil
}
