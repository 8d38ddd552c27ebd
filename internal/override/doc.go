// Package override assembles the key=value override tokens for the
// training command line.
//
// The token order is fixed and deterministic, and every value is passed
// through as an opaque string. A comma-joined value ("1e-4,1e-5,1e-6")
// denotes a sweep axis: the external multirun engine expands it into a
// cross-product of runs, this package only forwards it byte-for-byte.
package override
