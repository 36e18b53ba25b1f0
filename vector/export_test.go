// SPDX-License-Identifier: MIT

package vector

// Test bridge: exposes the internal options snapshot to vector_test only.

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	Precision int32
	Tolerance float64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Precision: o.precision, Tolerance: o.tolerance}
}

// OptionsOf_TestOnly returns the options bound into v.
func OptionsOf_TestOnly(v Vector) OptionsSnapshot {
	return OptionsSnapshot{Precision: v.opts.precision, Tolerance: v.opts.tolerance}
}
