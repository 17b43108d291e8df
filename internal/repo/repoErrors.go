package repo

import "errors"

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrDuplicateVote  = errors.New("vote already recorded for this voter")
)
