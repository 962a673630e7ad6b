package birbank

import "fmt"

// AuthError reports a failed login or a login response without a token.
// It is always surfaced to the user as a blocking error.
type AuthError struct {
	Status int // HTTP status when available, 0 otherwise
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("auth error: bank error (%d)", e.Status)
	}

	return fmt.Sprintf("auth error: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError reports a failed account or transaction listing.
type FetchError struct {
	Status int
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch error: bank error (%d)", e.Status)
	}

	return fmt.Sprintf("fetch error: %s", e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }
