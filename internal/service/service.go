// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All Firestore and Sheets calls go through this interface.
// Commands never import the Google SDKs directly.
type Service interface {
	// CreateTask writes t as a new document with a generated ID.
	// t.ID and t.CreatedAt are ignored; the creation time is assigned
	// by the server. Returns the new document ID.
	CreateTask(ctx context.Context, t Task) (string, error)

	// ListUserTasks returns every task created by userID, secret ones
	// included, ordered by priority desc then createdAt desc.
	ListUserTasks(ctx context.Context, userID string) ([]Task, error)

	// ListTeamTasks returns the team's non-secret tasks,
	// ordered by priority desc then createdAt desc.
	ListTeamTasks(ctx context.Context, teamID string) ([]Task, error)

	// AllTeamTasks returns every task of the team, newest first.
	AllTeamTasks(ctx context.Context, teamID string) ([]Task, error)

	// UserDisplayName returns the display name stored for uid.
	// Returns ErrNotFound if the user document does not exist.
	UserDisplayName(ctx context.Context, uid string) (string, error)

	// WriteSheet overwrites cellRange of a spreadsheet with rows.
	WriteSheet(ctx context.Context, spreadsheetID, cellRange string, rows [][]interface{}) error

	// Close releases backend connections.
	Close() error
}
