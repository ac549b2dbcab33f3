package ir

import "strings"

// Namespace map sugar: #:ns {...} tags a map with ":ns", implicitly
// qualifying its bare keys as ns/key. Lookups against such a tagged
// map rewrite a qualified keyword back to the bare key stored inside.
// The rewrite is a pure string transform, kept apart from the lookup
// path so it can be tested on its own.

// namespacedKey reports whether a lookup of the keyword key against a
// map tagged tag should use the namespace rewrite, and if so returns
// the key to look up. It applies only when key is qualified (contains
// a slash) and the tag carries the keyword marker.
func namespacedKey(tag, key string) (string, bool) {
	if !strings.Contains(key, "/") {
		return "", false
	}
	ns, ok := strings.CutPrefix(tag, ":")
	if !ok {
		return "", false
	}
	return stripNamespace(ns, key), true
}

// stripNamespace removes a leading "ns/" from key. Keys qualified
// under a different namespace pass through unchanged and are looked up
// verbatim. The split happens at the last occurrence of ns, so a key
// whose name repeats the namespace also passes through unchanged.
func stripNamespace(ns, key string) string {
	if !strings.HasPrefix(key, ns) {
		return key
	}
	i := strings.LastIndex(key, ns)
	if bare, ok := strings.CutPrefix(key[i+len(ns):], "/"); ok {
		return bare
	}
	return key
}
