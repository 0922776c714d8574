package conformance

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/colours"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/microphone"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/profile"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/snapshot"
)

// ErrMismatch is returned when a vector's outcome differs from its
// expectation.
var ErrMismatch = errors.New("conformance mismatch")

// Runner executes vectors.
type Runner struct {
	opts []profile.Option
}

// NewRunner returns a runner creating profiles with opts.
func NewRunner(opts ...profile.Option) *Runner {
	return &Runner{opts: opts}
}

// Run executes v. It returns nil when the outcome matches the expectation.
func (r *Runner) Run(v *Vector) error {
	p := profile.New(r.opts...)

	err := p.ReadXML(strings.NewReader(v.Input))
	if err == nil {
		for i, s := range v.Steps {
			if err = applyStep(p, s); err != nil {
				err = fmt.Errorf("step %d (%s): %w", i, s.Action, err)
				break
			}
		}
	}

	if v.Expect.Error != "" {
		if err == nil {
			return fmt.Errorf("%w: %s: expected error %q, got none", ErrMismatch, v.ID, v.Expect.Error)
		}
		if got := classify(err); got != v.Expect.Error {
			return fmt.Errorf("%w: %s: expected error %q, got %q (%v)", ErrMismatch, v.ID, v.Expect.Error, got, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", v.ID, err)
	}

	// Re-encode through a snapshot so both encodings are covered.
	snap, err := p.Snapshot()
	if err != nil {
		return fmt.Errorf("%s: %w", v.ID, err)
	}
	data, err := snapshot.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", v.ID, err)
	}
	decoded, err := snapshot.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", v.ID, err)
	}
	if len(decoded.Elements) != 1 || decoded.Elements[0].Name != profile.RootElement {
		return fmt.Errorf("%w: %s: document root missing", ErrMismatch, v.ID)
	}
	root := decoded.Elements[0]

	return check(v, root)
}

func check(v *Vector, root snapshot.Element) error {
	for path, want := range v.Expect.Elements {
		el, ok := find(root, path)
		if !ok {
			return fmt.Errorf("%w: %s: element %s not written", ErrMismatch, v.ID, path)
		}
		for name, value := range want {
			got, ok := lookup(el, name)
			if !ok {
				return fmt.Errorf("%w: %s: %s has no %s", ErrMismatch, v.ID, path, name)
			}
			if got != value {
				return fmt.Errorf("%w: %s: %s %s=%q, want %q", ErrMismatch, v.ID, path, name, got, value)
			}
		}
	}

	for path, names := range v.Expect.Absent {
		el, ok := find(root, path)
		if !ok {
			continue
		}
		for _, name := range names {
			if _, ok := lookup(el, name); ok {
				return fmt.Errorf("%w: %s: %s carries %s", ErrMismatch, v.ID, path, name)
			}
		}
	}

	for path, want := range v.Expect.Children {
		el, ok := find(root, path)
		if !ok {
			return fmt.Errorf("%w: %s: element %s not written", ErrMismatch, v.ID, path)
		}
		got := make([]string, len(el.Children))
		for i, c := range el.Children {
			got[i] = c.Name
		}
		if !slices.Equal(got, want) {
			return fmt.Errorf("%w: %s: %s children %v, want %v", ErrMismatch, v.ID, path, got, want)
		}
	}
	return nil
}

func find(el snapshot.Element, path string) (snapshot.Element, bool) {
	for _, name := range strings.Split(path, "/") {
		i := slices.IndexFunc(el.Children, func(c snapshot.Element) bool { return c.Name == name })
		if i < 0 {
			return snapshot.Element{}, false
		}
		el = el.Children[i]
	}
	return el, true
}

func lookup(el snapshot.Element, name string) (string, bool) {
	for _, p := range el.Attrs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// classify names err the way Expect.Error does.
func classify(err error) string {
	var pe *attr.ParseError
	switch {
	case errors.As(err, &pe):
		return pe.Kind.String()
	case errors.Is(err, attr.ErrOutOfRange):
		return "out of range"
	case errors.Is(err, components.ErrUnavailableInMode):
		return "unavailable"
	default:
		return "other"
	}
}

func param(s Step, name string) (string, error) {
	v, ok := s.Params[name]
	if !ok {
		return "", fmt.Errorf("missing param %q", name)
	}
	return v, nil
}

func intParam(s Step, name string, bitSize int) (int64, error) {
	v, err := param(s, name)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, bitSize)
}

func slotParam(p *profile.Profile, s Step) (*components.MegaphoneEffect, error) {
	id, err := intParam(s, "slot", 0)
	if err != nil {
		return nil, err
	}
	preset, ok := components.PresetFromID(int(id))
	if !ok {
		return nil, fmt.Errorf("%w: slot %d", attr.ErrOutOfRange, id)
	}
	return p.Megaphone().Preset(preset), nil
}

func applyStep(p *profile.Profile, s Step) error {
	switch s.Action {
	case "mode":
		name, err := param(s, "mode")
		if err != nil {
			return err
		}
		mode, err := components.AnimationModeNames.Parse(name)
		if err != nil {
			return err
		}
		p.Animation().SetMode(mode)
		return nil

	case "mod1", "mod2":
		v, err := intParam(s, "value", 16)
		if err != nil {
			return err
		}
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s=%d", attr.ErrOutOfRange, s.Action, v)
		}
		if s.Action == "mod1" {
			return p.Animation().SetMod1(uint8(v))
		}
		return p.Animation().SetMod2(uint8(v))

	case "waterfall":
		name, err := param(s, "direction")
		if err != nil {
			return err
		}
		d, err := components.WaterfallNames.Parse(name)
		if err != nil {
			return err
		}
		return p.Animation().SetWaterfall(d)

	case "style":
		fx, err := slotParam(p, s)
		if err != nil {
			return err
		}
		name, err := param(s, "style")
		if err != nil {
			return err
		}
		style, err := components.MegaphoneStyleNames.Parse(name)
		if err != nil {
			return err
		}
		return fx.SetStyle(style)

	case "state":
		fx, err := slotParam(p, s)
		if err != nil {
			return err
		}
		on, err := param(s, "on")
		if err != nil {
			return err
		}
		fx.SetState(attr.ParseFlag(attr.Attribute{Name: "on", Value: on}))
		return nil

	case "colour":
		i, err := intParam(s, "index", 0)
		if err != nil {
			return err
		}
		hex, err := param(s, "hex")
		if err != nil {
			return err
		}
		c, err := colours.ParseColour(hex)
		if err != nil {
			return err
		}
		return p.Megaphone().ColourMap().SetColour(int(i), c)

	case "gain", "frequency":
		name, err := param(s, "band")
		if err != nil {
			return err
		}
		band, err := microphone.BandNames.Parse(name)
		if err != nil {
			return err
		}
		raw, err := param(s, "value")
		if err != nil {
			return err
		}
		a := attr.Attribute{Name: s.Action, Value: raw}
		if s.Action == "gain" {
			v, err := attr.ParseTruncated[int8](a)
			if err != nil {
				return err
			}
			return p.Equalizer().SetGain(band, v)
		}
		hz, err := attr.ParseFloat32(a)
		if err != nil {
			return err
		}
		return p.Equalizer().SetFrequency(band, hz)

	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
}
