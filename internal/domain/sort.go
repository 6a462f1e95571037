package domain

import "sort"

// SortTasks orders tasks in place by priority ordinal ascending, then due date ascending.
// Ties keep their prior relative order.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j])
	})
}

// Less reports whether a sorts strictly before b
func Less(a, b Task) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Due.Before(b.Due)
}
