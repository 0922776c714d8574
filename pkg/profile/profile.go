package profile

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/document"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/microphone"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/snapshot"
)

// RootElement is the document root.
const RootElement = "ValueTreeRoot"

// ElementNames are the element names each model reads and writes.
type ElementNames struct {
	Animation string `yaml:"animation"`
	Megaphone string `yaml:"megaphone"`
	Equalizer string `yaml:"equalizer"`
}

// DefaultElementNames returns the names used by the vendor application.
func DefaultElementNames() ElementNames {
	return ElementNames{
		Animation: components.DefaultAnimationElement,
		Megaphone: components.DefaultMegaphoneElement,
		Equalizer: microphone.DefaultEqualizerElement,
	}
}

type options struct {
	names   ElementNames
	logger  *slog.Logger
	unknown attr.UnknownHandler
}

// Option configures a Profile.
type Option func(*options)

// WithElementNames overrides the element names. Empty fields keep their
// defaults.
func WithElementNames(n ElementNames) Option {
	return func(o *options) {
		if n.Animation != "" {
			o.names.Animation = n.Animation
		}
		if n.Megaphone != "" {
			o.names.Megaphone = n.Megaphone
		}
		if n.Equalizer != "" {
			o.names.Equalizer = n.Equalizer
		}
	}
}

// WithLogger sets the logger for the profile and its models.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUnknownHandler sets the unknown-attribute policy of every model.
func WithUnknownHandler(h attr.UnknownHandler) Option {
	return func(o *options) {
		o.unknown = h
	}
}

// Profile is a device profile document.
type Profile struct {
	names  ElementNames
	logger *slog.Logger

	animation *components.Animation
	megaphone *components.Megaphone
	equalizer *microphone.Equalizer
}

// New returns a profile with every model at its defaults.
func New(opts ...Option) *Profile {
	o := options{names: DefaultElementNames()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	diag := []attr.Option{attr.WithLogger(o.logger)}
	if o.unknown != nil {
		diag = append(diag, attr.WithUnknownHandler(o.unknown))
	}

	return &Profile{
		names:     o.names,
		logger:    o.logger,
		animation: components.NewAnimation(o.names.Animation, diag...),
		megaphone: components.NewMegaphone(o.names.Megaphone, diag...),
		equalizer: microphone.NewEqualizer(o.names.Equalizer, diag...),
	}
}

// Animation returns the LED animation model.
func (p *Profile) Animation() *components.Animation { return p.animation }

// Megaphone returns the megaphone model.
func (p *Profile) Megaphone() *components.Megaphone { return p.megaphone }

// Equalizer returns the microphone equalizer model.
func (p *Profile) Equalizer() *microphone.Equalizer { return p.equalizer }

// ElementNames returns the element names in use.
func (p *Profile) ElementNames() ElementNames { return p.names }

// HandleElement routes one document element to the model that owns it.
// Elements no model owns are skipped.
func (p *Profile) HandleElement(path []string, name string, attrs attr.List) error {
	switch name {
	case p.names.Animation:
		return p.animation.Parse(attrs)
	case p.names.Megaphone:
		return p.megaphone.ParseRoot(attrs)
	case p.names.Equalizer:
		return p.equalizer.Parse(attrs)
	case RootElement:
		if len(path) == 0 {
			return nil
		}
	}

	if len(path) > 0 && path[len(path)-1] == p.names.Megaphone {
		if suffix, ok := strings.CutPrefix(name, p.names.Megaphone+"preset"); ok {
			id, err := strconv.Atoi(suffix)
			if err == nil {
				return p.megaphone.ParsePreset(id, attrs)
			}
		}
	}

	p.logger.Debug("skipping element", "element", name, "parent", strings.Join(path, "/"))
	return nil
}

// Write emits the whole document.
func (p *Profile) Write(w attr.Writer) error {
	if err := w.StartElement(RootElement, nil); err != nil {
		return err
	}
	if err := p.animation.Write(w); err != nil {
		return fmt.Errorf("writing %s: %w", p.names.Animation, err)
	}
	if err := p.megaphone.Write(w); err != nil {
		return fmt.Errorf("writing %s: %w", p.names.Megaphone, err)
	}
	eq := attr.Map{}
	p.equalizer.Write(eq)
	if err := w.EmptyElement(p.names.Equalizer, eq); err != nil {
		return fmt.Errorf("writing %s: %w", p.names.Equalizer, err)
	}
	return w.EndElement(RootElement)
}

// ReadXML parses an XML document into p.
func (p *Profile) ReadXML(r io.Reader) error {
	return document.Decode(r, p)
}

// WriteXML writes p as an XML document.
func (p *Profile) WriteXML(w io.Writer) error {
	xw := document.NewXMLWriter(w)
	if err := p.Write(xw); err != nil {
		return err
	}
	return xw.Close()
}

// Snapshot captures p as a binary snapshot.
func (p *Profile) Snapshot() (*snapshot.Snapshot, error) {
	rec := snapshot.NewRecorder()
	if err := p.Write(rec); err != nil {
		return nil, err
	}
	return rec.Snapshot()
}

// ApplySnapshot parses a snapshot into p.
func (p *Profile) ApplySnapshot(s *snapshot.Snapshot) error {
	return snapshot.Replay(s, p)
}
