// Package microphone holds the microphone processing models of a profile.
//
// The [Equalizer] has ten bands, each with a gain in dB and a centre
// frequency in Hz. Frequencies are stored as written; the register value the
// device expects is derived on request by [Equalizer.FrequencyRegister].
//
// The band table in bands_gen.go is generated from bands.yaml.
package microphone

//go:generate go run ../../cmd/goxlr-bandgen -in bands.yaml -out bands_gen.go
