package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrEmptyKeyword = errors.New("keyword is empty")
	ErrNotFound     = errors.New("task not found")
)
