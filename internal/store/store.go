// Package store holds the in-memory task list shared by every screen.
//
// A Store is owned by the application and handed to consumers through a
// context scope (see NewContext). Every effective mutation publishes an
// immutable Snapshot to all subscribers.
package store

import (
	"sync"

	"github.com/dori/dayly/internal/model"
	"go.uber.org/zap"
)

// Snapshot is an immutable view of the task list at one version.
// Consumers must not modify Tasks.
type Snapshot struct {
	Version uint64
	Tasks   []model.Task
}

// Store is the single source of truth for tasks
type Store struct {
	mu      sync.RWMutex
	tasks   []model.Task
	version uint64
	closed  bool
	subs    map[*Subscription]struct{}
	log     *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for mutation tracing
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTasks seeds the store with an initial list
func WithTasks(tasks []model.Task) Option {
	return func(s *Store) {
		s.tasks = append([]model.Task(nil), tasks...)
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		subs: make(map[*Subscription]struct{}),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns a snapshot copy of the list in insertion order
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeOpen()
	return s.copyTasks()
}

// Snapshot returns the current list together with its version
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeOpen()
	return Snapshot{Version: s.version, Tasks: s.copyTasks()}
}

// Version increases by one on every effective mutation
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeOpen()
	return s.version
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeOpen()
	return len(s.tasks)
}

// Get looks up a task by id
func (s *Store) Get(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.mustBeOpen()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Add appends a task. The title is not validated here.
func (s *Store) Add(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	s.tasks = append(s.tasks, task)
	s.commit("add", zap.String("id", task.ID), zap.String("date", task.Date))
}

// Toggle flips the done flag of the task with the given id.
// Unknown ids are ignored.
func (s *Store) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	i := s.indexOf(id)
	if i < 0 {
		s.miss("toggle", id)
		return
	}
	s.tasks[i].Done = !s.tasks[i].Done
	s.commit("toggle", zap.String("id", id), zap.Bool("done", s.tasks[i].Done))
}

// Update replaces the task whose id matches task.ID in full.
// Fields are not merged; unknown ids are ignored and nothing is created.
func (s *Store) Update(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	i := s.indexOf(task.ID)
	if i < 0 {
		s.miss("update", task.ID)
		return
	}
	s.tasks[i] = task
	s.commit("update", zap.String("id", task.ID))
}

// Delete removes the task with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	i := s.indexOf(id)
	if i < 0 {
		s.miss("delete", id)
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.commit("delete", zap.String("id", id))
}

// DeleteOnDay removes every task scheduled on the canonical day and
// returns how many were removed. It publishes a single snapshot.
func (s *Store) DeleteOnDay(day string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.OnDay(day) {
			next = append(next, t)
		}
	}
	removed := len(s.tasks) - len(next)
	if removed == 0 {
		s.log.Debug("mutation skipped", zap.String("op", "clear_day"), zap.String("date", day), zap.Bool("found", false))
		return 0
	}
	s.tasks = next
	s.commit("clear_day", zap.String("date", day), zap.Int("removed", removed))
	return removed
}

// Close detaches every subscriber. Any later use of the store panics.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.log.Debug("store closed", zap.Uint64("version", s.version))
}

// commit bumps the version and publishes. Caller holds the write lock.
func (s *Store) commit(op string, fields ...zap.Field) {
	s.version++
	snap := Snapshot{Version: s.version, Tasks: s.copyTasks()}
	for sub := range s.subs {
		sub.deliver(snap)
	}
	s.log.Debug("mutation", append([]zap.Field{
		zap.String("op", op),
		zap.Uint64("version", s.version),
		zap.Int("len", len(s.tasks)),
	}, fields...)...)
}

func (s *Store) miss(op, id string) {
	s.log.Debug("mutation skipped", zap.String("op", op), zap.String("id", id), zap.Bool("found", false))
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) copyTasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) mustBeOpen() {
	if s.closed {
		panic("store: use of closed store")
	}
}
