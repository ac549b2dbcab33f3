// Package ir provides the value model for EDN documents.
//
// # Overview
//
// The ir package defines the core data structure for representing EDN
// forms. All forms (whether read from text or created
// programmatically) are represented as ir.Value trees. The model is
// purely semantic: it carries no position information from input
// documents; positions live on parse.Node.
//
// # Value Structure
//
// A Value represents a single EDN form. Values can be:
//
//   - Atomic types: nil, boolean, int, double, rational, big int,
//     big decimal, char, string, keyword, symbol
//   - Composite types: vector, list, set, map
//   - Tagged values: a tag name wrapping a single inner value
//
// Sets and maps keep their members in sorted order under Compare, so
// membership tests are binary searches and equal collections have
// equal shape.
//
// # Ordering
//
// Compare defines a total order over all values. Values of different
// types order by type; Type constants are declared in that order.
// Doubles use a total order in which every NaN bit pattern has a
// place, so sets and maps holding NaN stay well formed.
//
// # Navigation
//
// Get, Nth and Contains navigate composite values, including through
// namespace-tagged maps (#:ns {...}), whose bare keys respond to
// lookups by their qualified keywords.
package ir
