// Package attr defines the two capability interfaces the matching
// engine uses to treat node and edge attributes as opaque values:
// Comparator (compatibility between two attributes) and Destroyer
// (teardown of one attribute). Both are generic over the attribute
// type so callers get compile-time checking instead of the void-pointer
// casts the original C++ engine relied on.
//
// Defaults are provided for the common case of "no attributes to speak
// of": AcceptAll never rejects a pair, NoOp never does anything on
// teardown. ComparatorFunc and DestroyerFunc adapt a plain function to
// the corresponding interface, for callers who do not want to declare a
// named type just to implement a single method.
package attr
