// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected structure.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserIDInContext signals that a protected handler ran without the
	// auth middleware in front of it.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)
