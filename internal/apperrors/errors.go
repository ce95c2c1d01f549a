package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewFilmNotFoundError creates a specific error for when a film record is not found.
func NewFilmNotFoundError(filmID int64) *ErrNotFound {
	return &ErrNotFound{
		Resource: "film",
		ID:       filmID,
	}
}

// ErrSoftBlocked is returned when the catalog answers with the empty-body 202
// soft block on the retry as well, meaning the session is being throttled.
type ErrSoftBlocked struct {
	URL string
}

// Error implements the error interface.
func (e *ErrSoftBlocked) Error() string {
	return fmt.Sprintf("soft-blocked (202 after retry) at URL: %s", e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrSoftBlocked) Is(target error) bool {
	_, ok := target.(*ErrSoftBlocked)
	return ok
}

// NewSoftBlockedError creates a new ErrSoftBlocked for the given URL.
func NewSoftBlockedError(url string) *ErrSoftBlocked {
	return &ErrSoftBlocked{URL: url}
}

// ErrUnexpectedStatus is returned when a page fetch yields a status code the
// caller has no recovery path for. Resolution treats it as "zero results".
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d from URL: %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// NewUnexpectedStatusError creates a new ErrUnexpectedStatus.
func NewUnexpectedStatusError(url string, status int) *ErrUnexpectedStatus {
	return &ErrUnexpectedStatus{URL: url, StatusCode: status}
}
