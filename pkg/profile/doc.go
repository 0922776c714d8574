// Package profile assembles the device models into a profile document.
//
// A [Profile] owns one animation, one megaphone and one equalizer and
// dispatches document elements to them by name. Documents are read from and
// written to XML through package document, or to the binary form of package
// snapshot. Both paths drive the same element dispatch.
//
// Models are not safe for concurrent use. [Store] serialises whole load,
// modify and save cycles for callers that share profile files.
package profile
