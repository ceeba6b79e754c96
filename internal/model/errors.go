package model

import "errors"

var (
	ErrCorpusUnavailable = errors.New("message corpus not loaded")
	ErrFeedUnavailable   = errors.New("message feed unavailable")
	ErrAnswerUnavailable = errors.New("answer provider unavailable")
)
