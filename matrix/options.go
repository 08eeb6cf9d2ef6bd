// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - The resolved policy is unexported; public constructors consume ...Option.

package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// options holds the resolved construction policy for a Dense matrix.
type options struct {
	validateNaNInf bool // reject NaN/±Inf in Set/Apply/FromRows
}

// Option mutates the construction policy. Safe to apply repeatedly (last wins).
type Option func(*options)

// WithValidateNaNInf switches the finite-value guard on or off.
// Disabling it is meant for tests and for loading foreign fixtures verbatim.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) {
		o.validateNaNInf = enabled
	}
}

// gatherOptions resolves defaults and applies opts in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
