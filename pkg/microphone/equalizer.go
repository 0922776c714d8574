package microphone

import (
	"fmt"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/units"
)

// DefaultEqualizerElement is the element carrying the equalizer attributes.
const DefaultEqualizerElement = "equalizer"

type bandInfo struct {
	token            string
	gainKey          string
	frequencyKey     string
	defaultFrequency float32
}

// Valid reports whether b names a band.
func (b Band) Valid() bool {
	return b < BandCount
}

// Token returns the key fragment of the band, e.g. "31.5HZ".
func (b Band) Token() string {
	return bandTable[b].token
}

// GainKey returns the gain attribute name, e.g. "MIC_EQ_31.5HZ_GAIN".
func (b Band) GainKey() string {
	return bandTable[b].gainKey
}

// FrequencyKey returns the frequency attribute name, e.g. "MIC_EQ_31.5HZ_F".
func (b Band) FrequencyKey() string {
	return bandTable[b].frequencyKey
}

// DefaultFrequency returns the nominal centre frequency.
func (b Band) DefaultFrequency() float32 {
	return bandTable[b].defaultFrequency
}

// BandNames parses band names such as "1kHz".
var BandNames = attr.NewNamed("band", Band.String, Bands[:]...)

type bandField struct {
	band      Band
	frequency bool
}

var bandKeys = func() map[string]bandField {
	m := make(map[string]bandField, 2*BandCount)
	for _, b := range Bands {
		m[b.GainKey()] = bandField{band: b}
		m[b.FrequencyKey()] = bandField{band: b, frequency: true}
	}
	return m
}()

// Equalizer is the ten band microphone equalizer.
type Equalizer struct {
	elementName string
	diag        attr.Diagnostics

	gains       [BandCount]int8
	frequencies [BandCount]float32
}

// NewEqualizer returns a flat equalizer at the nominal band frequencies.
func NewEqualizer(elementName string, opts ...attr.Option) *Equalizer {
	if elementName == "" {
		elementName = DefaultEqualizerElement
	}
	e := &Equalizer{
		elementName: elementName,
		diag:        attr.NewDiagnostics(opts...),
	}
	for _, b := range Bands {
		e.frequencies[b] = b.DefaultFrequency()
	}
	return e
}

// ElementName returns the element the equalizer is read from.
func (e *Equalizer) ElementName() string {
	return e.elementName
}

// Parse applies the gain and frequency attributes. Gains are truncated to
// whole dB; frequencies are kept as written.
func (e *Equalizer) Parse(attrs attr.List) error {
	gains, frequencies := e.gains, e.frequencies
	for _, a := range attrs {
		f, ok := bandKeys[a.Name]
		if !ok {
			e.diag.Unknown(e.elementName, a)
			continue
		}
		if f.frequency {
			v, err := attr.ParseFloat32(a)
			if err != nil {
				return err
			}
			frequencies[f.band] = v
			continue
		}
		v, err := attr.ParseTruncated[int8](a)
		if err != nil {
			return err
		}
		gains[f.band] = v
	}
	e.gains, e.frequencies = gains, frequencies
	return nil
}

// Write adds all twenty attributes to out.
func (e *Equalizer) Write(out attr.Map) {
	for _, b := range Bands {
		out.Set(b.GainKey(), attr.FormatInt(e.gains[b]))
		out.Set(b.FrequencyKey(), attr.FormatFloat32(e.frequencies[b]))
	}
}

// Gain returns the gain of b in dB.
func (e *Equalizer) Gain(b Band) int8 {
	if !b.Valid() {
		return 0
	}
	return e.gains[b]
}

// SetGain sets the gain of b in dB.
func (e *Equalizer) SetGain(b Band, v int8) error {
	if !b.Valid() {
		return fmt.Errorf("%w: band %d", attr.ErrOutOfRange, uint8(b))
	}
	e.gains[b] = v
	return nil
}

// Frequency returns the centre frequency of b in Hz.
func (e *Equalizer) Frequency(b Band) float32 {
	if !b.Valid() {
		return 0
	}
	return e.frequencies[b]
}

// SetFrequency sets the centre frequency of b in Hz.
func (e *Equalizer) SetFrequency(b Band, hz float32) error {
	if !b.Valid() {
		return fmt.Errorf("%w: band %d", attr.ErrOutOfRange, uint8(b))
	}
	e.frequencies[b] = hz
	return nil
}

// FrequencyRegister returns the device register value for b's frequency.
func (e *Equalizer) FrequencyRegister(b Band) int32 {
	return units.FrequencyRegister(e.Frequency(b))
}
