package inventory

import (
	"path/filepath"
	"testing"
	"time"
)

// newTestLedger opens a fresh database file in a temporary directory and
// returns an engine over it. The store is closed when the test ends.
func newTestLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("cannot open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewLedger(store, opts...)
}

// tick returns a deterministic clock advancing one second per call.
func tick() func() time.Time {
	t0 := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

// at is a shorthand for a UTC instant in tests.
func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// f64 and str return pointers, for the optional fields of update inputs.
func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }
