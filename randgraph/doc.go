// Package randgraph generates random ARG pairs for benchmarking and
// testing, the external collaborator spec §1 calls out ("benchmarking
// input generation... out of scope for the core engine"). Isomorphic
// mirrors original_source/include/gene.h's Generate(nodes, edges, g1,
// g2, connected) contract (header only in the retrieval pack — gene.cc
// is not included, so the body here is original work following that
// header's documented signature); the Bernoulli-per-ordered-pair
// sampling style is grounded on lvlath/builder's RandomSparse
// (impl_random_sparse.go).
package randgraph
