package telegram

import "fmt"

// ResolveError means a phone number could not be mapped to a peer. The
// row is skipped and the run continues.
type ResolveError struct {
	Phone string
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %s", e.Phone, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ImportError means the contact import request failed. The row is
// skipped with no fallback to a direct lookup.
type ImportError struct {
	Phone string
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %s", e.Phone, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// SendError covers a single failed message. It never aborts the sibling
// message or subsequent rows.
type SendError struct {
	Text string
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send %q: %s", e.Text, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
