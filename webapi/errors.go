package webapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDelegation is the single error kind of this package. Every error returned
// by a TokenList matches it with errors.Is.
var ErrDelegation = errors.New("token list delegation failed")

// DelegationError reports a host call that could not be completed, was
// rejected by the host, or returned a value of the wrong type.
type DelegationError struct {
	Op    string
	Token string
	Err   error
}

func (e *DelegationError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s: %v", ErrDelegation, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s(%q): %v", ErrDelegation, e.Op, e.Token, e.Err)
}

// Cause returns the host error for errors.Cause.
func (e *DelegationError) Cause() error { return e.Err }

func (e *DelegationError) Unwrap() error { return e.Err }

func (e *DelegationError) Is(target error) bool { return target == ErrDelegation }

// IsDelegationFailure reports whether err came from a failed host call.
func IsDelegationFailure(err error) bool {
	return errors.Is(err, ErrDelegation)
}

func delegationFailure(op, token string, err error) error {
	if err == nil {
		return nil
	}
	var de *DelegationError
	if errors.As(err, &de) {
		return err
	}
	return &DelegationError{Op: op, Token: token, Err: err}
}
