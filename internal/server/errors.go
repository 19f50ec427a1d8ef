// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNothingToServe is returned by NewServer when no HTTP handler or
	// listen address is configured.
	errNothingToServe = errors.New("no HTTP handler or address configured")
)
