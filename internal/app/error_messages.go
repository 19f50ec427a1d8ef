// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The web client matches some of them literally, so the
// wording is part of the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is empty or is not
	// valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Server error"

	// MsgServiceUnavailable is returned when the database could not be
	// reached in time. The client may retry.
	MsgServiceUnavailable = "Service temporarily unavailable"

	// MsgRouteNotFound is returned for unknown routes and for known paths
	// requested with a method they do not serve.
	MsgRouteNotFound = "Route not found"
)

// Authentication messages.
const (
	MsgNoToken               = "Unauthorized: No token provided"
	MsgInvalidOrExpiredToken = "Invalid or expired token"
	MsgTokenWithoutUserID    = "Invalid token: No user ID found"
)

// Account messages.
const (
	MsgUserRegistered         = "User registered successfully!"
	MsgUserAlreadyExists      = "User already exists!"
	MsgLoginSuccessful        = "Login successful!"
	MsgInvalidEmailOrPassword = "Invalid email or password!"
	MsgUserNotFound           = "User not found"
)

// Video and membership messages.
const (
	MsgNoFileUploaded      = "No file uploaded"
	MsgFileTooLarge        = "File too large"
	MsgVideoUploaded       = "Video uploaded successfully"
	MsgErrorUploadingVideo = "Error uploading video"
	MsgErrorFetchingVideos = "Error fetching videos"
	MsgUnknownVideoList    = "Unknown video list"
	MsgActionSuccessful    = "Action successful"
)

// Comment messages.
const (
	MsgCommentPosted         = "Comment posted successfully!"
	MsgCommentDeleted        = "Comment deleted successfully!"
	MsgCommentNotFound       = "Comment not found"
	MsgCommentNotOwned       = "Forbidden: You can only delete your own comments"
	MsgErrorFetchingComments = "Error fetching comments"
)
