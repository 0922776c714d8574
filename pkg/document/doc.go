// Package document reads and writes profile documents as XML.
//
// Decode streams a document and hands every element's attributes, in
// document order, to an attr.Handler together with the names of its
// ancestors. XMLWriter implements attr.Writer and emits attributes sorted by
// name so that saving the same model twice produces identical bytes.
package document
