// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoseed/internal/service"
)

// ErrWriteFailed is returned by CreateTask once FailCreateAfter is reached.
var ErrWriteFailed = errors.New("unavailable: write failed")

// SheetWrite records one WriteSheet call.
type SheetWrite struct {
	SpreadsheetID string
	Range         string
	Rows          [][]interface{}
}

// FakeService is an in-memory implementation of service.Service for testing.
// Creation times come from a fake clock that advances one millisecond per
// write, standing in for the server timestamp.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	users  map[string]string // uid -> display name
	clock  time.Time
	writes []SheetWrite
	closed bool

	// Error injection for testing
	CreateTaskErr      error
	FailCreateAfter    int // fail CreateTask once this many writes succeeded (0 = never)
	ListUserTasksErr   error
	ListTeamTasksErr   error
	AllTeamTasksErr    error
	UserDisplayNameErr error
	WriteSheetErr      error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		users: make(map[string]string),
		clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddTask stores a task directly, keeping the given ID and CreatedAt.
func (f *FakeService) AddTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// AddUser stores a user profile.
func (f *FakeService) AddUser(uid, displayName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[uid] = displayName
}

// Tasks returns every stored task in insertion order.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// SheetWrites returns the recorded WriteSheet calls.
func (f *FakeService) SheetWrites() []SheetWrite {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]SheetWrite, len(f.writes))
	copy(result, f.writes)
	return result
}

// Closed reports whether Close was called.
func (f *FakeService) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, t service.Task) (string, error) {
	if f.CreateTaskErr != nil {
		return "", f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailCreateAfter > 0 && len(f.tasks) >= f.FailCreateAfter {
		return "", ErrWriteFailed
	}

	f.clock = f.clock.Add(time.Millisecond)
	t.ID = uuid.NewString()
	t.CreatedAt = f.clock
	f.tasks = append(f.tasks, t)
	return t.ID, nil
}

// ListUserTasks implements service.Service.
func (f *FakeService) ListUserTasks(ctx context.Context, userID string) ([]service.Task, error) {
	if f.ListUserTasksErr != nil {
		return nil, f.ListUserTasksErr
	}
	return f.filter(func(t service.Task) bool { return t.CreatedBy == userID }, byPriority), nil
}

// ListTeamTasks implements service.Service.
func (f *FakeService) ListTeamTasks(ctx context.Context, teamID string) ([]service.Task, error) {
	if f.ListTeamTasksErr != nil {
		return nil, f.ListTeamTasksErr
	}
	return f.filter(func(t service.Task) bool { return t.TeamID == teamID && !t.IsSecret }, byPriority), nil
}

// AllTeamTasks implements service.Service.
func (f *FakeService) AllTeamTasks(ctx context.Context, teamID string) ([]service.Task, error) {
	if f.AllTeamTasksErr != nil {
		return nil, f.AllTeamTasksErr
	}
	return f.filter(func(t service.Task) bool { return t.TeamID == teamID }, byNewest), nil
}

// UserDisplayName implements service.Service.
func (f *FakeService) UserDisplayName(ctx context.Context, uid string) (string, error) {
	if f.UserDisplayNameErr != nil {
		return "", f.UserDisplayNameErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	name, ok := f.users[uid]
	if !ok {
		return "", service.ErrNotFound
	}
	return name, nil
}

// WriteSheet implements service.Service.
func (f *FakeService) WriteSheet(ctx context.Context, spreadsheetID, cellRange string, rows [][]interface{}) error {
	if f.WriteSheetErr != nil {
		return f.WriteSheetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, SheetWrite{SpreadsheetID: spreadsheetID, Range: cellRange, Rows: rows})
	return nil
}

// Close implements service.Service.
func (f *FakeService) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *FakeService) filter(keep func(service.Task) bool, less func(a, b service.Task) bool) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []service.Task
	for _, t := range f.tasks {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

// byPriority orders priority desc, then createdAt desc.
func byPriority(a, b service.Task) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// byNewest orders createdAt desc.
func byNewest(a, b service.Task) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
