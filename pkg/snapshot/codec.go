package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Version is the snapshot format version written by this package.
const Version uint8 = 1

var (
	// ErrUnsupportedVersion is returned for snapshots of an unknown format.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrDigestMismatch is returned when the elements do not match the digest.
	ErrDigestMismatch = errors.New("snapshot digest mismatch")
)

// encMode produces deterministic output so equal trees encode to equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Pair is one attribute of an element.
type Pair struct {
	Name  string `cbor:"1,keyasint"`
	Value string `cbor:"2,keyasint"`
}

// Element is a node of the captured tree.
type Element struct {
	Name     string    `cbor:"1,keyasint"`
	Attrs    []Pair    `cbor:"2,keyasint,omitempty"`
	Children []Element `cbor:"3,keyasint,omitempty"`
}

// Snapshot is a captured profile document.
type Snapshot struct {
	Version  uint8     `cbor:"1,keyasint"`
	ID       uuid.UUID `cbor:"2,keyasint"`
	SavedAt  time.Time `cbor:"3,keyasint"`
	Elements []Element `cbor:"4,keyasint"`
	Digest   []byte    `cbor:"5,keyasint"`
}

// New builds a snapshot of elements with a fresh ID and digest.
func New(elements []Element) (*Snapshot, error) {
	digest, err := Digest(elements)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Version:  Version,
		ID:       uuid.New(),
		SavedAt:  time.Now().UTC().Truncate(time.Second),
		Elements: elements,
		Digest:   digest,
	}, nil
}

// Digest returns the BLAKE2b-256 sum of the canonical encoding of elements.
func Digest(elements []Element) ([]byte, error) {
	data, err := encMode.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encoding elements: %w", err)
	}
	sum := blake2b.Sum256(data)
	return sum[:], nil
}

// Marshal encodes s.
func Marshal(s *Snapshot) ([]byte, error) {
	return encMode.Marshal(s)
}

// Unmarshal decodes and verifies a snapshot.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	digest, err := Digest(s.Elements)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(digest, s.Digest) {
		return nil, ErrDigestMismatch
	}
	return &s, nil
}

// Encode writes s to w.
func Encode(w io.Writer, s *Snapshot) error {
	return encMode.NewEncoder(w).Encode(s)
}

// Decode reads and verifies one snapshot from r.
func Decode(r io.Reader) (*Snapshot, error) {
	var raw cbor.RawMessage
	if err := decMode.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Unmarshal(raw)
}
