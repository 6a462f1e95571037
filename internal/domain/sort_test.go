package domain

import (
	"math/rand"
	"sort"
	"testing"
	"time"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func names(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func isSorted(tasks []Task) bool {
	return sort.SliceIsSorted(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j])
	})
}

func TestSortTasks_PriorityThenDate(t *testing.T) {
	tasks := []Task{
		{Name: "Write report", Priority: PriorityLow, Due: date("2025-03-01")},
		{Name: "Fix bug", Priority: PriorityHigh, Due: date("2025-02-01")},
		{Name: "Review PR", Priority: PriorityHigh, Due: date("2025-01-15")},
		{Name: "Plan sprint", Priority: PriorityMedium, Due: date("2025-01-01")},
	}

	SortTasks(tasks)

	want := []string{"Review PR", "Fix bug", "Plan sprint", "Write report"}
	got := names(tasks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortTasks()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSortTasks_Empty(t *testing.T) {
	var tasks []Task
	SortTasks(tasks)

	if len(tasks) != 0 {
		t.Errorf("SortTasks(empty) should stay empty, got %d tasks", len(tasks))
	}
}

func TestSortTasks_StableSort(t *testing.T) {
	// Tasks with same priority and date should maintain relative order
	tasks := []Task{
		{Name: "a", Priority: PriorityMedium, Due: date("2025-05-05")},
		{Name: "b", Priority: PriorityMedium, Due: date("2025-05-05")},
		{Name: "c", Priority: PriorityMedium, Due: date("2025-05-05")},
	}

	SortTasks(tasks)

	want := []string{"a", "b", "c"}
	for i, task := range tasks {
		if task.Name != want[i] {
			t.Errorf("SortTasks()[%d] = %s, want %s (stable sort failed)", i, task.Name, want[i])
		}
	}
}

func TestSortTasks_AdjacentPairsOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := date("2025-01-01")

	for round := 0; round < 50; round++ {
		n := rng.Intn(30)
		tasks := make([]Task, n)
		for i := range tasks {
			tasks[i] = Task{
				Name:     "t",
				Priority: Priorities[rng.Intn(len(Priorities))],
				Due:      base.AddDate(0, 0, rng.Intn(20)),
			}
		}

		SortTasks(tasks)

		for i := 1; i < len(tasks); i++ {
			a, b := tasks[i-1], tasks[i]
			if a.Priority > b.Priority {
				t.Fatalf("round %d: priority out of order at %d: %v > %v", round, i, a.Priority, b.Priority)
			}
			if a.Priority == b.Priority && a.Due.After(b.Due) {
				t.Fatalf("round %d: date out of order at %d: %s > %s", round, i, a.DueString(), b.DueString())
			}
		}
		if !isSorted(tasks) {
			t.Fatalf("round %d: not sorted after SortTasks", round)
		}
	}
}

func TestLess(t *testing.T) {
	high := Task{Priority: PriorityHigh, Due: date("2025-06-01")}
	low := Task{Priority: PriorityLow, Due: date("2025-01-01")}
	highEarly := Task{Priority: PriorityHigh, Due: date("2025-01-01")}

	if !Less(high, low) {
		t.Error("High should sort before Low regardless of date")
	}
	if !Less(highEarly, high) {
		t.Error("earlier date should sort first within a priority")
	}
	if Less(high, high) {
		t.Error("Less should be irreflexive")
	}
}
