package attr

import "log/slog"

// UnknownHandler is told about attributes a model does not recognise.
type UnknownHandler interface {
	UnknownAttribute(element string, a Attribute)
}

// UnknownHandlerFunc adapts a function to UnknownHandler.
type UnknownHandlerFunc func(element string, a Attribute)

// UnknownAttribute calls f.
func (f UnknownHandlerFunc) UnknownAttribute(element string, a Attribute) {
	f(element, a)
}

// IgnoreUnknown discards unknown attributes.
type IgnoreUnknown struct{}

// UnknownAttribute does nothing.
func (IgnoreUnknown) UnknownAttribute(string, Attribute) {}

// LogUnknown returns a handler that logs unknown attributes at warn level.
func LogUnknown(logger *slog.Logger) UnknownHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UnknownHandlerFunc(func(element string, a Attribute) {
		logger.Warn("unmatched attribute", "element", element, "attribute", a.Name, "value", a.Value)
	})
}

// Diagnostics carries the logger and unknown-attribute policy a model
// reports through.
type Diagnostics struct {
	logger  *slog.Logger
	unknown UnknownHandler
}

// Option configures Diagnostics.
type Option func(*Diagnostics)

// WithLogger sets the logger. Nil selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Diagnostics) {
		d.logger = logger
	}
}

// WithUnknownHandler sets the unknown-attribute policy. The default logs
// through the configured logger.
func WithUnknownHandler(h UnknownHandler) Option {
	return func(d *Diagnostics) {
		d.unknown = h
	}
}

// NewDiagnostics applies opts over the defaults.
func NewDiagnostics(opts ...Option) Diagnostics {
	var d Diagnostics
	for _, opt := range opts {
		opt(&d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.unknown == nil {
		d.unknown = LogUnknown(d.logger)
	}
	return d
}

// Logger returns the configured logger.
func (d Diagnostics) Logger() *slog.Logger {
	if d.logger == nil {
		return slog.Default()
	}
	return d.logger
}

// Unknown reports an unrecognised attribute.
func (d Diagnostics) Unknown(element string, a Attribute) {
	if d.unknown == nil {
		LogUnknown(d.Logger()).UnknownAttribute(element, a)
		return
	}
	d.unknown.UnknownAttribute(element, a)
}

// OutOfRange logs an enumeration value that names no variant.
func (d Diagnostics) OutOfRange(element string, a Attribute) {
	d.Logger().Warn("enum value out of range", "element", element, "attribute", a.Name, "value", a.Value)
}
