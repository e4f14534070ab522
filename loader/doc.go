// Package loader supplies concrete arg.Loader implementations: Memory,
// a builder-style in-memory loader configured via functional options
// (mirroring lvlath/builder's functional-option shape; Memory itself
// does no validation, which arg.New performs), and Editor, a
// mutable pre-ARG editing buffer equivalent to VFLib's argedit.cc —
// described in original_source/include/argraph.h's doc comments as "a
// class which can be used as a base for a new ARGLoader" but not
// shipped in the retrieval pack, so Editor is built directly from that
// description as the natural companion to Memory.
package loader
