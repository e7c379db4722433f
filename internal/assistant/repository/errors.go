package repository

import "errors"

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrFailedToAppend     = errors.New("failed to append message")
	ErrFailedToList       = errors.New("failed to list messages")
)
