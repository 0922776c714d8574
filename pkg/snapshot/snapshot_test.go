package snapshot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T) *Recorder {
	t.Helper()
	r := NewRecorder()
	require.NoError(t, r.StartElement("ValueTreeRoot", nil))
	require.NoError(t, r.EmptyElement("animationTree", attr.Map{"mod1": "39", "animationMode": "3"}))
	require.NoError(t, r.StartElement("megaphoneEffect", attr.Map{"megaphoneEffectcolour0": "00FFFF"}))
	require.NoError(t, r.EmptyElement("megaphoneEffectpreset1", attr.Map{"TRANS_HP": "110"}))
	require.NoError(t, r.EmptyElement("megaphoneEffectpreset2", attr.Map{"TRANS_HP": "50"}))
	require.NoError(t, r.EndElement("megaphoneEffect"))
	require.NoError(t, r.EndElement("ValueTreeRoot"))
	return r
}

func TestRecorderTree(t *testing.T) {
	elements, err := record(t).Elements()
	require.NoError(t, err)
	require.Len(t, elements, 1)

	root := elements[0]
	assert.Equal(t, "ValueTreeRoot", root.Name)
	assert.Nil(t, root.Attrs)
	require.Len(t, root.Children, 2)
	assert.Equal(t, []Pair{{Name: "animationMode", Value: "3"}, {Name: "mod1", Value: "39"}}, root.Children[0].Attrs)
	require.Len(t, root.Children[1].Children, 2)
	assert.Equal(t, "megaphoneEffectpreset2", root.Children[1].Children[1].Name)
}

func TestRecorderUnbalanced(t *testing.T) {
	r := NewRecorder()
	assert.Error(t, r.EndElement("x"))

	require.NoError(t, r.StartElement("a", nil))
	assert.Error(t, r.EndElement("b"))
	_, err := r.Elements()
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Version, s.Version)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Len(t, s.Digest, 32)

	data, err := Marshal(s)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.True(t, s.SavedAt.Equal(got.SavedAt))
	assert.Equal(t, s.Elements, got.Elements)
	assert.Equal(t, s.Digest, got.Digest)
}

func TestEncodeDecodeStream(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Elements, got.Elements)
}

func TestDeterministicDigest(t *testing.T) {
	a, err := record(t).Snapshot()
	require.NoError(t, err)
	b, err := record(t).Snapshot()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Digest, b.Digest)
}

func TestUnmarshalRejectsTampering(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)
	s.Elements[0].Children[0].Attrs[1].Value = "40"

	data, err := Marshal(s)
	require.NoError(t, err)
	_, err = Unmarshal(data)
	assert.ErrorIs(t, err, ErrDigestMismatch)
}

func TestUnmarshalRejectsVersion(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)
	s.Version = 9

	data, err := Marshal(s)
	require.NoError(t, err)
	_, err = Unmarshal(data)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0x00})
	assert.Error(t, err)
	_, err = Decode(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)

	var seen []string
	err = Replay(s, attr.HandlerFunc(func(path []string, name string, attrs attr.List) error {
		seen = append(seen, strings.Join(append(path, name), "/"))
		if name == "animationTree" {
			assert.Equal(t, attr.List{{Name: "animationMode", Value: "3"}, {Name: "mod1", Value: "39"}}, attrs)
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ValueTreeRoot",
		"ValueTreeRoot/animationTree",
		"ValueTreeRoot/megaphoneEffect",
		"ValueTreeRoot/megaphoneEffect/megaphoneEffectpreset1",
		"ValueTreeRoot/megaphoneEffect/megaphoneEffectpreset2",
	}, seen)
}

func TestReplayStopsOnError(t *testing.T) {
	s, err := record(t).Snapshot()
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	err = Replay(s, attr.HandlerFunc(func(_ []string, name string, _ attr.List) error {
		calls++
		if name == "megaphoneEffect" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}
