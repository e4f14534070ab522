// Package attrs supplies concrete attribute kinds the core matching
// engine deliberately keeps external (spec: "concrete attribute types
// out of scope"): Label, a plain string with exact-equality comparison;
// Weighted, a labeled value compared with a numeric tolerance; and
// Tuple, a positional []any attribute for nodes or edges carrying more
// than one opaque field.
package attrs
