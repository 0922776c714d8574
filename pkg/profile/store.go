package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/snapshot"
)

// ErrUnknownFormat is returned for paths whose extension names no format.
var ErrUnknownFormat = errors.New("unknown profile format")

// Format is an on-disk profile encoding.
type Format uint8

const (
	FormatXML Format = iota
	FormatSnapshot
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// File extensions of each format.
const (
	ExtXML      = ".xml"
	ExtSnapshot = ".gxs"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtXML:
		return FormatXML, nil
	case ExtSnapshot:
		return FormatSnapshot, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Store loads and saves profile files. Each operation holds the store lock
// for its whole duration.
type Store struct {
	mu   sync.Mutex
	opts []Option
}

// NewStore returns a store creating profiles with opts.
func NewStore(opts ...Option) *Store {
	return &Store{opts: opts}
}

// Load reads the profile at path.
func (s *Store) Load(path string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(path)
}

// Save writes p to path, creating parent directories as needed.
func (s *Store) Save(path string, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(path, p)
}

// Update loads path, applies fn and saves the result. Nothing is written if
// fn fails.
func (s *Store) Update(path string, fn func(*Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(path)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return s.save(path, p)
}

// Convert reads in and writes it to out, each in the format of its
// extension.
func (s *Store) Convert(in, out string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(in)
	if err != nil {
		return err
	}
	return s.save(out, p)
}

func (s *Store) load(path string) (*Profile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := New(s.opts...)
	switch format {
	case FormatSnapshot:
		snap, err := snapshot.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		err = p.ApplySnapshot(snap)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	default:
		if err := p.ReadXML(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return p, nil
}

func (s *Store) save(path string, p *Profile) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatSnapshot:
		snap, err := p.Snapshot()
		if err != nil {
			return err
		}
		if err := snapshot.Encode(&buf, snap); err != nil {
			return err
		}
	default:
		if err := p.WriteXML(&buf); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
