// Package testutil provides testing utilities for rawkit.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Operation Scripts
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(1000, 0.6) {
//	    if op == testutil.OpPush { ... } else { ... }
//	}
//
// # Drop Accounting
//
// Probe values implement Drop and report to a DropTracker, so tests can
// verify that a container destroys every element exactly once:
//
//	tr := testutil.NewDropTracker()
//	v := vec.FromSlice(tr.Probes(4))
//	v.Clear()
//	// tr.Total() == 4, tr.Count(i) == 1 for every i
package testutil
