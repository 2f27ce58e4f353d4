package git

import "fmt"

// DiffError is returned when a change query fails.
type DiffError struct {
	Query string
	Cause error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Query, e.Cause)
}
func (e *DiffError) Unwrap() error { return e.Cause }

// RepositoryError is returned when the repository cannot be opened or read.
type RepositoryError struct {
	Path  string
	Cause error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("failed to read git repository at %s: %v", e.Path, e.Cause)
}
func (e *RepositoryError) Unwrap() error { return e.Cause }
