// Package apperror defines the failure kinds the service layer is
// allowed to surface: validation, not-found and storage.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindStorage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound covers both unknown ids and ids owned by another user, so a
// caller cannot probe for foreign note ids.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}

func kindOf(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return kindOf(err, KindValidation) }
func IsNotFound(err error) bool   { return kindOf(err, KindNotFound) }
func IsStorage(err error) bool    { return kindOf(err, KindStorage) }
