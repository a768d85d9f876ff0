// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command or flag).
	UserError = 1

	// AuthError indicates a credentials or configuration error.
	AuthError = 2

	// BackendError indicates a Firestore, Sheets or network error.
	BackendError = 3
)
