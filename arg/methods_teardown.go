// File: methods_teardown.go
// Role: One-shot attribute teardown (spec §3 "Ownership": if an
// attribute destroyer is registered, the ARG destroys every attribute
// exactly once on teardown").
package arg

import "sync/atomic"

// Close destroys every node and edge attribute exactly once, via the
// registered destroyers (no-ops by default). Only the first call
// destroys anything; subsequent calls are no-ops. Close does not free the
// ARG's own storage — the Go garbage collector does that once the
// *ARG becomes unreachable.
//
// Complexity: O(N + E).
func (a *ARG[N, E]) Close() {
	if !atomic.CompareAndSwapInt32(&a.closed, 0, 1) {
		return
	}
	for i := 0; i < a.n; i++ {
		a.nodeDestroyer.Destroy(a.nodeAttr[i])
		for _, e := range a.outAttr[i] {
			a.edgeDestroyer.Destroy(e)
		}
	}
}
