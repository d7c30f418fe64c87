package detailmatch

import (
	"testing"

	"go.uber.org/goleak"
)

// Clients must not leave goroutines behind after Close.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
