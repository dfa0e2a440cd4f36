package buildinfo

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Date = "v0.3.0", "abc123", "2026-10-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	if got, want := String(), "traitspec v0.3.0 (commit=abc123, date=2026-10-01)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
