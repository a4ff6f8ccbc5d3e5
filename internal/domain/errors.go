package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNoTaskFile        = errors.New("no task file found (run 'tasq init' first)")
	ErrTaskFileExists    = errors.New("task file already exists (use --force to overwrite)")
	ErrEmptyDescription  = errors.New("task description cannot be empty")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrAmbiguousProject  = errors.New("cannot disambiguate project name")
	ErrRootExists        = errors.New("scan root already configured")
	ErrRootNotFound      = errors.New("scan root not configured")
	ErrAssistantNotFound = errors.New("assistant not found")
	ErrLineOutOfRange    = errors.New("line index out of range")
	ErrNotATaskLine      = errors.New("line is not a checkbox task")
)
