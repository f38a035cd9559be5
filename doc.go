// Package t3 is a declarative binary-format engine for describing,
// parsing, and synthesizing structured byte-oriented data: BER-TLV,
// APDU, ATR, and other bit-packed smart-card and protocol shapes.
//
// Users build Tables: named, ordered sequences of Fields. Each Field
// carries a Pattern describing how many bytes (or bits) it consumes, a
// Value holding the parsed or authored data, and optionally a Binding
// that derives the Field's value from other fields in the same table.
// The same Table matches raw bytes (parsing, via Table.Parse) or
// serializes itself back into bytes (synthesis, via Table.Synthesize) —
// it is the same declarative object either way.
//
// # Support status
//
// This package implements the core matching/synthesis engine: the
// polymorphic numeric Value (mixed-radix arithmetic, concatenation,
// base conversion with leading-zero preservation), the Pattern engine
// (fixed-size sections, literals, alternation, the non-greedy Any, and
// callback-dispatched patterns), Table/Field/Binding with automatic
// cross-field recomputation, Set (prefix-dispatched, order-independent
// matching), Bitmap/Bitset (bit-granular fields over a byte stream), and
// Repeater/List (bounded repetition).
//
// It does not ship a general-purpose BER-TLV package, an ATR/APDU schema
// library, pretty-printing, or any I/O — those are external collaborators.
// See the example tests for BER-TLV, APDU and ATR shapes built entirely
// from this package's public primitives.
//
// # Non-goals
//
//   - No network or file I/O.
//   - No signed arithmetic: subtraction underflow clamps to zero.
//   - No floating point.
//   - No thread-safety beyond "callers serialize mutation of a table
//     tree"; concurrent use of distinct trees is safe.
package t3
