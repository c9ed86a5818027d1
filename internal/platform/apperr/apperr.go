// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the
title indexer.

It provides a rich error type that bridges the gap between low-level pipeline
errors and the process exit surface of a batch CLI.

Architecture:

  - AppError: A struct containing a machine-readable Code, an operator-facing
    message and a process exit code.
  - Taxonomy: One constructor per fatal category; every error that aborts a
    run is one of these.
  - Propagation: Errors are never recovered locally. They travel up to the
    command layer, which logs the diagnostic and exits with ExitCode.

There is no partial-failure mode: either the whole catalog is indexed or the
run aborts with a visible failure and the operator re-runs.
*/
package apperr

import (
	"errors"
	"fmt"
)

// Exit codes per fatal category. Zero is reserved for success and one for
// uncategorized failures.
const (
	ExitSinkUnavailable  = 10
	ExitSourceNotFound   = 11
	ExitEmptyCatalog     = 12
	ExitMissingMainTitle = 13
	ExitSubmissionFailed = 14
)

// AppError is the canonical error type for the indexer.
//
// It carries a machine-readable code, an operator-safe message, the process
// exit code for the command layer, and the underlying cause for structured
// logging.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "SOURCE_NOT_FOUND").
	Code string
	// Message is a human-readable diagnostic for the operator.
	Message string
	// ExitCode is the process exit status the command layer should use.
	ExitCode int
	// Cause is the underlying error, used for structured logging only.
	Cause error
}

// Error implements the error interface. It returns the operator message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// SinkUnavailable reports that the search service failed its health check.
// The diagnostic names the configured URL so the operator can tell a typo
// from a service outage.
func SinkUnavailable(url string, cause error) *AppError {
	return &AppError{
		Code:     "SINK_UNAVAILABLE",
		Message:  fmt.Sprintf("no MeiliSearch instance is reachable at %s", url),
		ExitCode: ExitSinkUnavailable,
		Cause:    cause,
	}
}

// SourceNotFound reports that the catalog file is missing or unreadable.
func SourceNotFound(path string, cause error) *AppError {
	return &AppError{
		Code:     "SOURCE_NOT_FOUND",
		Message:  fmt.Sprintf("the catalog file %q cannot be opened", path),
		ExitCode: ExitSourceNotFound,
		Cause:    cause,
	}
}

// SourceMalformed reports a structural parse failure mid-stream. It shares
// the SOURCE_NOT_FOUND category: both mean the source cannot be consumed.
func SourceMalformed(path string, cause error) *AppError {
	return &AppError{
		Code:     "SOURCE_NOT_FOUND",
		Message:  fmt.Sprintf("the catalog file %q is malformed", path),
		ExitCode: ExitSourceNotFound,
		Cause:    cause,
	}
}

// EmptyCatalog reports that the catalog parsed but contained zero entries.
// Distinct from success: an empty dump almost always means a broken download.
func EmptyCatalog(path string) *AppError {
	return &AppError{
		Code:     "EMPTY_CATALOG",
		Message:  fmt.Sprintf("no entries found in catalog file %q", path),
		ExitCode: ExitEmptyCatalog,
	}
}

// MissingMainTitle reports an entry without the required main title variant.
// Fatal for the whole run; skipping entries would silently change totals.
func MissingMainTitle(entryID int) *AppError {
	return &AppError{
		Code:     "MISSING_MAIN_TITLE",
		Message:  fmt.Sprintf("entry %d has no main title", entryID),
		ExitCode: ExitMissingMainTitle,
	}
}

// SubmissionFailed reports a failed batch hand-off to the sink. No retry:
// the index is left partially loaded and the operator re-runs.
func SubmissionFailed(batchSize int, cause error) *AppError {
	return &AppError{
		Code:     "SUBMISSION_FAILED",
		Message:  fmt.Sprintf("failed to submit a batch of %d documents", batchSize),
		ExitCode: ExitSubmissionFailed,
		Cause:    cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// ExitCode maps err to its process exit status. Uncategorized errors map
// to 1, nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ae := As(err); ae != nil {
		return ae.ExitCode
	}
	return 1
}
