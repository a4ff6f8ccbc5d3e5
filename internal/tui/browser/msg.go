package browser

import "github.com/qretaio/tasq/internal/domain"

// MsgProjectsLoaded carries a completed scan.
type MsgProjectsLoaded struct {
	Projects []domain.ProjectResult
	Err      error
}

// MsgStatusSet reports a completed status flip.
type MsgStatusSet struct {
	Err error
}
