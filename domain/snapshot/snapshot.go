// Package snapshot decides which records of an edited collection must be
// re-submitted to the backend. A baseline is captured right after a
// successful load; before a bulk save the current rows are compared
// against it and only the changed subset is sent.
package snapshot

// Watch reports whether any watched field differs between the baseline
// and current version of a record. Fields outside the watch-list are
// ignored for dirty-detection.
type Watch[T any] func(baseline, current T) bool

// WatchFields builds a Watch from named field extractors. Extracted
// values are compared with ==, so extractors must return comparable
// values (dereference pointers first).
func WatchFields[T any](fields ...func(T) any) Watch[T] {
	return func(baseline, current T) bool {
		for _, f := range fields {
			if f(baseline) != f(current) {
				return true
			}
		}
		return false
	}
}

// Changed returns the subsequence of current records whose watched fields
// differ from their baseline counterpart. Records are matched by key, not
// by position; a current record with no baseline counterpart is always
// changed. Records missing from current are ignored (deletion is not part
// of this workflow).
func Changed[T any, K comparable](baseline, current []T, key func(T) K, watch Watch[T]) []T {
	old := make(map[K]T, len(baseline))
	for _, r := range baseline {
		old[key(r)] = r
	}

	var changed []T
	for _, r := range current {
		prev, ok := old[key(r)]
		if !ok || watch(prev, r) {
			changed = append(changed, r)
		}
	}
	return changed
}
