package main

import "errors"

// Sentinel errors for every way a run can fail. Call sites wrap these with
// fmt.Errorf and %w so the top level can classify failures without string
// matching.
var (
	ErrInvalidURL            = errors.New("invalid YouTube URL")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrMissingCredential     = errors.New("missing API key")
	ErrSummarizationFailed   = errors.New("summarization failed")
	ErrInvalidLanguage       = errors.New("invalid language")
)
