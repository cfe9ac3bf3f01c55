// Package listing is the in-memory list query engine shared by the
// paginated GET endpoints. It takes an already-filtered snapshot of
// entities from the storage layer and applies deterministic ordering and
// 1-indexed pagination. The snapshot is never mutated.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// DefaultPageSize is the page size used when the client does not supply
// one (or supplies a non-positive one).
const DefaultPageSize = 15

// Comparator orders two values like cmp.Compare: negative when a sorts
// before b, zero when equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Apply returns a freshly allocated, sorted and paginated slice.
//
// The sort is stable: equal elements keep the snapshot's order. A true
// reverse flag inverts the whole comparator, including null placement,
// rather than iterating the ascending result backwards. Non-positive page
// or pageSize fall back to the defaults, and a page beyond the available
// results yields an empty slice, never an error.
func Apply[T any](items []T, compare Comparator[T], reverse bool, page, pageSize int) []T {
	sorted := slices.Clone(items)

	effective := compare
	if reverse {
		effective = func(a, b T) int { return -compare(a, b) }
	}
	slices.SortStableFunc(sorted, effective)

	return paginate(sorted, page, pageSize)
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	// A page window past the first must fit entirely within the results:
	// with 7 items and pageSize 2, page 2 yields indices [2,3] and page 4
	// yields nothing. The first page is always served, clamped.
	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= len(items) || (page > 1 && end > len(items)) {
		return []T{}
	}

	return items[start:min(end, len(items)):len(items)]
}

// compareFold orders strings case-insensitively.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareNullableFloat orders floats with nulls last in ascending order.
// Comparator inversion under reverse then places them first.
func compareNullableFloat(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

// compareNullableTime orders times with nulls last in ascending order.
func compareNullableTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
