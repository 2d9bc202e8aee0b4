package service

import (
	"context"
	"errors"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrDraftNotFound        = errors.New("no profile edit in progress")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
)

// PersistenceError reports a storage failure. The request can be retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Retryable() bool {
	return true
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// Publisher announces domain changes to other consumers.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
