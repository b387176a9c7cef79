package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows                 = errors.New("no rows")
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrForbidden              = errors.New("access denied")
	ErrInvalidParams          = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrAudioNotFound          = errors.New("audio not found")
	ErrCommentNotFound        = errors.New("comment not found")
	ErrFileNotFound           = errors.New("file not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")

	ErrDisallowedFileType   = errors.New("file type is not allowed")
	ErrFileTooLarge         = errors.New("file exceeds the size limit")
	ErrInvalidCommentTarget = errors.New("comment must reference exactly one of document or audio")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}
