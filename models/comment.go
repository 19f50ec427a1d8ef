package models

import "time"

// Comment is a text annotation authored by a user against a video.
type Comment struct {
	// CommentID is the unique identifier of the comment.
	CommentID string `json:"_id"`

	// VideoID references the commented video. Not checked against the catalog.
	VideoID string `json:"videoId"`

	// UserID is the author identifier. Only the author may delete the comment.
	UserID string `json:"-"`

	// Author is the populated author projection returned to clients.
	Author CommentAuthor `json:"userId"`

	// Text is the comment body, trimmed of surrounding whitespace.
	Text string `json:"text"`

	// CreatedAt is the time the comment was posted.
	CreatedAt time.Time `json:"createdAt"`
}

// CommentAuthor is the subset of user fields attached to a listed comment.
type CommentAuthor struct {
	UserID string `json:"_id"`
	Name   string `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
