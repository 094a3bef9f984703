// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"go.uber.org/goleak"
)

// The search is synchronous; no test in this package may leave a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
