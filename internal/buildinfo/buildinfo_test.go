package buildinfo

import "testing"

func TestShortPrefersVersion(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.0", "0123456789abcdef"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short() = %q", got)
	}
	Version = "dev"
	if got := Short(); got != "0123456789ab" {
		t.Fatalf("Short() = %q", got)
	}
}

func TestString(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v0.1.0", "abc", "2026-10-16"
	if got, want := String(), "disco v0.1.0 (commit abc, built 2026-10-16)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
