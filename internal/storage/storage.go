// Package storage reads and writes the catalog file.
//
// The file holds three arrays (attractions, itineraries, locations) as JSON
// or YAML. Writes are atomic; a failed write leaves the previous file intact.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tripbook/internal/atomicfile"
	"github.com/aidanlsb/tripbook/internal/catalog"
)

// Format selects the file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml". Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q (want json or yaml)", s)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// PersistenceError reports a catalog file that could not be written.
type PersistenceError struct {
	Path             string
	PermissionDenied bool
	Err              error
}

func (e *PersistenceError) Error() string {
	if e.PermissionDenied {
		return fmt.Sprintf("Could not save data to file %s due to insufficient permissions to write to the file or the folder.", e.Path)
	}
	return fmt.Sprintf("Could not save data to file %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// LoadError reports a catalog file that exists but cannot be turned into a
// valid catalog.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog file %s is invalid: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store persists a catalog at one path.
type Store struct {
	path   string
	format Format
}

// New returns a store for path. An empty format is inferred from the path.
func New(path string, format Format) *Store {
	if format == "" {
		format = FormatForPath(path)
	}
	return &Store{path: path, format: format}
}

// Path returns the catalog file path.
func (s *Store) Path() string { return s.path }

// Stamp identifies one version of the catalog file on disk.
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// Equal reports whether both stamps describe the same file version.
func (s Stamp) Equal(o Stamp) bool {
	return s.Size == o.Size && s.ModTime.Equal(o.ModTime)
}

// Stamp returns the current file's stamp, or false when it does not exist.
func (s *Store) Stamp() (Stamp, bool) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return Stamp{}, false
	}
	return Stamp{ModTime: fi.ModTime(), Size: fi.Size()}, true
}

// Load reads the catalog. A missing file yields an empty catalog and
// exists=false.
func (s *Store) Load() (c *catalog.Catalog, exists bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog.New(), false, nil
	}
	if err != nil {
		return nil, true, &LoadError{Path: s.path, Err: err}
	}

	doc, err := s.decode(data)
	if err != nil {
		return nil, true, &LoadError{Path: s.path, Err: err}
	}
	snap, err := toSnapshot(doc)
	if err != nil {
		return nil, true, &LoadError{Path: s.path, Err: err}
	}
	c, err = catalog.FromSnapshot(snap)
	if err != nil {
		return nil, true, &LoadError{Path: s.path, Err: err}
	}
	return c, true, nil
}

// Save writes the whole catalog.
func (s *Store) Save(snap catalog.Snapshot) error {
	data, err := s.encode(toDocument(snap))
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := atomicfile.WriteFile(s.path, data, 0); err != nil {
		return &PersistenceError{Path: s.path, PermissionDenied: errors.Is(err, fs.ErrPermission), Err: err}
	}
	return nil
}

func (s *Store) encode(doc document) ([]byte, error) {
	switch s.format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

func (s *Store) decode(data []byte) (document, error) {
	var doc document
	switch s.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return document{}, fmt.Errorf("parse json: %w", err)
		}
	}
	return doc, nil
}
