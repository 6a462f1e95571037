// Package store holds the authoritative in-memory task list and its edit state machine.
package store

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/riordanpawley/taskify/internal/domain"
)

// NoSelection is the index reported by the display when no row is selected
const NoSelection = -1

// State is the edit state of the store
type State int

const (
	StateIdle State = iota
	StateEditing
)

func (s State) String() string {
	return [...]string{"idle", "editing"}[s]
}

// Listener receives a full snapshot of the list after every successful mutation
type Listener interface {
	ListChanged(tasks []domain.Task)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(tasks []domain.Task)

// ListChanged calls f(tasks)
func (f ListenerFunc) ListChanged(tasks []domain.Task) {
	f(tasks)
}

// Store is the ordered task collection. It is not safe for concurrent use;
// callers serialise access through the UI event loop.
type Store struct {
	tasks     []domain.Task
	state     State
	staged    *domain.Task // task taken out by BeginEdit, restored by CancelEdit
	listeners []Listener
	logger    *slog.Logger
}

// New creates an empty store that notifies the given listeners
func New(logger *slog.Logger, listeners ...Listener) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		tasks:     make([]domain.Task, 0),
		state:     StateIdle,
		listeners: listeners,
		logger:    logger,
	}
}

// Subscribe registers another listener
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Tasks returns a copy of the current list in display order
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks in the list
func (s *Store) Len() int {
	return len(s.tasks)
}

// State returns the current edit state
func (s *Store) State() State {
	return s.state
}

// Editing reports whether an edit is in progress
func (s *Store) Editing() bool {
	return s.state == StateEditing
}

// Staged returns the task being edited, if any
func (s *Store) Staged() (domain.Task, bool) {
	if s.staged == nil {
		return domain.Task{}, false
	}
	return *s.staged, true
}

// Add validates the fields, appends a new task, re-sorts and notifies listeners
func (s *Store) Add(name, priority, due string) error {
	if s.state == StateEditing {
		return domain.ErrEditInProgress
	}

	task, err := domain.NewTask(name, priority, due)
	if err != nil {
		s.logger.Debug("add rejected", "error", err)
		return err
	}

	s.insert(task)
	s.logger.Info("task added", "id", task.ID, "priority", task.Priority, "due", task.DueString())
	return nil
}

// DeleteAt removes the task at index. The remaining order is untouched.
func (s *Store) DeleteAt(index int) error {
	if err := s.checkIndex("delete", index); err != nil {
		return err
	}

	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.logger.Info("task deleted", "id", removed.ID, "index", index)
	s.notify()
	return nil
}

// Delete removes the task with the given ID
func (s *Store) Delete(id uuid.UUID) error {
	index := s.IndexOf(id)
	if index == NoSelection {
		return domain.ErrNotFound
	}
	return s.DeleteAt(index)
}

// BeginEdit takes the task at index out of the list and holds it until
// CommitEdit replaces it or CancelEdit restores it.
func (s *Store) BeginEdit(index int) (domain.Task, error) {
	if err := s.checkIndex("edit", index); err != nil {
		return domain.Task{}, err
	}
	if s.state == StateEditing {
		return domain.Task{}, domain.ErrEditInProgress
	}

	task := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.staged = &task
	s.state = StateEditing

	s.logger.Info("edit started", "id", task.ID, "index", index)
	s.notify()
	return task, nil
}

// CommitEdit validates the fields and adds the edited task, ending the edit.
// On validation failure the store stays in the editing state.
func (s *Store) CommitEdit(name, priority, due string) error {
	if s.state != StateEditing {
		return domain.ErrNotEditing
	}

	task, err := domain.NewTask(name, priority, due)
	if err != nil {
		s.logger.Debug("edit rejected", "error", err)
		return err
	}

	// The edited task keeps its identity
	task.ID = s.staged.ID

	s.staged = nil
	s.state = StateIdle
	s.insert(task)
	s.logger.Info("edit committed", "id", task.ID)
	return nil
}

// CancelEdit puts the staged task back unchanged and ends the edit
func (s *Store) CancelEdit() error {
	if s.state != StateEditing {
		return domain.ErrNotEditing
	}

	task := *s.staged
	s.staged = nil
	s.state = StateIdle
	s.insert(task)
	s.logger.Info("edit canceled", "id", task.ID)
	return nil
}

// Sort orders the list by priority then due date
func (s *Store) Sort() {
	domain.SortTasks(s.tasks)
}

// IndexOf returns the position of the task with the given ID, or NoSelection
func (s *Store) IndexOf(id uuid.UUID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return NoSelection
}

// IDAt returns the ID of the task at index. A missing selection is
// reported without an operation name.
func (s *Store) IDAt(index int) (uuid.UUID, error) {
	if err := s.checkIndex("", index); err != nil {
		return uuid.Nil, err
	}
	return s.tasks[index].ID, nil
}

func (s *Store) insert(task domain.Task) {
	s.tasks = append(s.tasks, task)
	s.Sort()
	s.notify()
}

func (s *Store) checkIndex(op string, index int) error {
	if index == NoSelection {
		return &domain.NoSelectionError{Op: op}
	}
	if index < 0 || index >= len(s.tasks) {
		return &domain.InvalidIndexError{Op: op, Index: index, Len: len(s.tasks)}
	}
	return nil
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := s.Tasks()
	for _, l := range s.listeners {
		l.ListChanged(snapshot)
	}
}
