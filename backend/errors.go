/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package backend

import "errors"

var (
	// ErrEmptyReport is returned before any request is sent when the report
	// text is blank.
	ErrEmptyReport = errors.New("report text is empty")
	// ErrEmptyMessage is returned before any request is sent when the chat
	// message is blank.
	ErrEmptyMessage = errors.New("chat message is empty")
	// ErrEmptyEmail is returned before any request is sent when no email
	// address was given for a report.
	ErrEmptyEmail = errors.New("email address is empty")
	// ErrInvalidEmail is returned before any request is sent when the email
	// address does not parse.
	ErrInvalidEmail = errors.New("email address is invalid")
	// ErrEmptyPrompt is returned before any request is sent when the
	// simulation scenario is blank.
	ErrEmptyPrompt = errors.New("simulation prompt is empty")
	// ErrTransport wraps network, status and decode failures.
	ErrTransport = errors.New("backend request failed")

	errMissingBaseURL = errors.New("backend URL is not configured")
)

// AppError is an error reported by the analysis backend in the response
// body. Its message is shown to the user verbatim.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}
