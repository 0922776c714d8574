// Package attr implements the flat attribute codec shared by the profile
// models.
//
// A profile document is a tree of elements, each carrying an unordered set of
// name/value attribute pairs. The document reader hands each model a [List]
// in document order; models hand a [Map] back to a [Writer] when saving.
//
// # Numeric values
//
// Every numeric attribute is parsed as a float first and then narrowed to its
// field type with units.Truncate, because the vendor application writes
// integral values as floats in places ("39.0"). Enum ordinals are the
// exception: they are parsed as plain unsigned integers.
//
// # Enumerations
//
// Two encodings coexist and are selected per field, never per type:
//   - [Ordinal]: the value is the zero-based position in declaration order.
//     An out-of-range position is not an error; the field keeps its value.
//   - [Indexed]: the value is matched against an explicit per-variant index
//     string. A value with no match is ignored silently.
//
// [Named] provides strict name parsing for human input and is the only path
// that produces ExpectedEnum errors.
//
// # Diagnostics
//
// Attributes a model does not recognise are passed to a single
// [UnknownHandler], configured through [Diagnostics]. The default handler
// logs at warn level; [IgnoreUnknown] discards.
package attr
