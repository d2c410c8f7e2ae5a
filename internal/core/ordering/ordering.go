// Package ordering computes the display order of tasks.
//
// Comparison keys, most significant first: explicit order index (missing sorts last),
// priority rank (high, medium, low), due date (missing sorts last). Sorting is stable, so
// tasks that tie on every key keep their input order.
package ordering

import (
	"cmp"
	"slices"

	"github.com/tonandton/report-tracking/internal/core/domain"
)

// Comparator returns a negative number when a sorts before b, zero when they tie.
type Comparator func(a, b domain.Task) int

// Default is the display order used for live tasks and history snapshots.
var Default = Chain(ByOrder, ByPriority, ByDue)

func ByOrder(a, b domain.Task) int {
	switch {
	case a.Order == nil && b.Order == nil:
		return 0
	case a.Order == nil:
		return 1
	case b.Order == nil:
		return -1
	default:
		return cmp.Compare(*a.Order, *b.Order)
	}
}

func ByPriority(a, b domain.Task) int {
	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

func ByDue(a, b domain.Task) int {
	switch {
	case a.Due == nil && b.Due == nil:
		return 0
	case a.Due == nil:
		return 1
	case b.Due == nil:
		return -1
	default:
		return a.Due.Compare(*b.Due)
	}
}

// Chain tries each comparator in turn until one breaks the tie.
func Chain(comparators ...Comparator) Comparator {
	return func(a, b domain.Task) int {
		for _, compare := range comparators {
			if c := compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Sort returns a copy of tasks in Default order.
func Sort(tasks []domain.Task) []domain.Task {
	return SortWith(tasks, Default)
}

// SortWith returns a stably sorted copy of tasks; the input slice is left untouched.
func SortWith(tasks []domain.Task, compare Comparator) []domain.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, compare)
	return sorted
}
