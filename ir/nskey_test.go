package ir

import "testing"

func TestNamespacedKey(t *testing.T) {
	tests := []struct {
		tag, key string
		want     string
		ok       bool
	}{
		{":ns", "ns/k", "k", true},
		{":ns", "other/k", "other/k", true},
		{":ns", "k", "", false},
		{"inst", "ns/k", "", false},
		{":foo", "foo/bar", "bar", true},
	}
	for _, tt := range tests {
		got, ok := namespacedKey(tt.tag, tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("namespacedKey(%q, %q) = %q, %v; want %q, %v",
				tt.tag, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStripNamespace(t *testing.T) {
	tests := []struct {
		ns, key, want string
	}{
		{"ns", "ns/k", "k"},
		{"ns", "other/k", "other/k"},
		// the split uses the last occurrence of the namespace, so a
		// key whose name repeats it passes through unchanged
		{"foo", "foo/foo", "foo/foo"},
		{"a", "a/a/b", "b"},
	}
	for _, tt := range tests {
		if got := stripNamespace(tt.ns, tt.key); got != tt.want {
			t.Errorf("stripNamespace(%q, %q) = %q, want %q", tt.ns, tt.key, got, tt.want)
		}
	}
}
