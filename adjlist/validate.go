// SPDX-License-Identifier: MIT

package adjlist

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate scans every arc of g and reports all negative or NaN weights in a
// single aggregated error. Each reported entry wraps ErrNegativeWeight.
// Returns nil if every weight is usable by a shortest-path search.
// Complexity: O(V + E).
func Validate[V comparable, W Weight](g Graph[V, W]) error {
	var result *multierror.Error
	for from, arcs := range g {
		for i, a := range arcs {
			if IsInvalidWeight(a.Weight) {
				result = multierror.Append(result,
					fmt.Errorf("%w: arc #%d %v→%v weight=%v", ErrNegativeWeight, i, from, a.To, a.Weight))
			}
		}
	}

	return result.ErrorOrNil()
}

// IsInvalidWeight reports whether w is negative or NaN.
// NaN is the only value for which w != w holds.
func IsInvalidWeight[W Weight](w W) bool {
	return w < 0 || w != w
}
