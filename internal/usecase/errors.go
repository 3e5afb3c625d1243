package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValuationID     = errors.New("invalid valuation id")
	ErrInvalidValuationStatus = errors.New("invalid valuation status")
	ErrValuationNotFound      = errors.New("valuation not found")
	ErrInvalidManagerAction   = errors.New("invalid manager action")
	ErrUnknownOptionsCategory = errors.New("unknown options category")
	ErrUnsyncedAttachment     = errors.New("valuation still holds attachments that were not uploaded")
)

// UpstreamError wraps a failure of an external collaborator (attachment store,
// repository, renderer). The record is not persisted when it is returned.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstream(op string, err error) error {
	var ue *UpstreamError
	if errors.As(err, &ue) || errors.Is(err, ErrUnsyncedAttachment) {
		return err
	}
	return &UpstreamError{Op: op, Err: err}
}
