package entities

import "errors"

// Domain errors
var (
	// Truth store errors
	ErrMeetingExists   = errors.New("meeting already exists")
	ErrMeetingNotFound = errors.New("meeting not found")

	// Derived store errors
	ErrAnalysisExists = errors.New("analysis already exists for cache key")

	// Enum boundary errors
	ErrInvalidMeetingType = errors.New("invalid meeting type")
	ErrInvalidSentiment   = errors.New("invalid sentiment")
	ErrInvalidOutcome     = errors.New("invalid outcome")
	ErrInvalidRole        = errors.New("invalid role")
)
