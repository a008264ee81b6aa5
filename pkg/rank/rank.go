// Package rank provides the generic canonical-row selection primitive used
// across the pipeline: partition a record set by a grouping key and keep the
// single maximum record per group under a caller-supplied total ordering.
//
// Determinism contract: the ordering passed to Top1PerGroup must be strict
// and total. When the natural ordering key can tie (timestamps often do),
// callers must extend the comparison with the record's unique surrogate ID so
// that identical snapshots always select identical records.
package rank

// Better reports whether candidate ranks strictly above incumbent. It must
// define a strict total order over the record set; incomparable or tied pairs
// make the selection dependent on input order, which breaks idempotence.
type Better[T any] func(candidate, incumbent T) bool

// Top1PerGroup partitions items by key and returns the maximum record per
// group under better. Groups with zero records are simply absent from the
// result. The selection is pure and order-independent given a strict total
// ordering.
func Top1PerGroup[T any, K comparable](items []T, key func(T) K, better Better[T]) map[K]T {
	winners := make(map[K]T)
	for _, item := range items {
		k := key(item)
		incumbent, ok := winners[k]
		if !ok || better(item, incumbent) {
			winners[k] = item
		}
	}
	return winners
}

// Filter returns the items satisfying keep, preserving input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// GroupBy partitions items by key, preserving input order within each group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
