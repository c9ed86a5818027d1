// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-indexer/internal/platform/apperr"
)

/*
TestErrorChain verifies cause wrapping and extraction through fmt wrapping.
*/
func TestErrorChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.SinkUnavailable("http://127.0.0.1:7700", cause)

	// 1. Diagnostic names the URL
	assert.Contains(t, err.Error(), "http://127.0.0.1:7700")

	// 2. Cause survives further wrapping
	wrapped := fmt.Errorf("startup: %w", err)
	assert.ErrorIs(t, wrapped, cause)

	// 3. Extraction through the chain
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "SINK_UNAVAILABLE", ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
}

/*
TestExitCode verifies the exit status mapping for each category.
*/
func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, apperr.ExitCode(nil))
	assert.Equal(t, 1, apperr.ExitCode(errors.New("uncategorized")))
	assert.Equal(t, apperr.ExitSinkUnavailable, apperr.ExitCode(apperr.SinkUnavailable("u", nil)))
	assert.Equal(t, apperr.ExitSourceNotFound, apperr.ExitCode(apperr.SourceNotFound("p", nil)))
	assert.Equal(t, apperr.ExitSourceNotFound, apperr.ExitCode(apperr.SourceMalformed("p", nil)))
	assert.Equal(t, apperr.ExitEmptyCatalog, apperr.ExitCode(apperr.EmptyCatalog("p")))
	assert.Equal(t, apperr.ExitMissingMainTitle, apperr.ExitCode(apperr.MissingMainTitle(1)))
	assert.Equal(t, apperr.ExitSubmissionFailed, apperr.ExitCode(apperr.SubmissionFailed(500, nil)))
}
