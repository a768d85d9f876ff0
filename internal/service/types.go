// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

// Task represents a single to-do document.
type Task struct {
	ID          string
	Content     string
	Priority    int // lower value = higher urgency
	IsSecret    bool
	IsCompleted bool
	CreatedBy   string
	TeamID      string
	CreatedAt   time.Time // assigned by the server on write
}
