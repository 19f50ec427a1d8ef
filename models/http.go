package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCommentRequest is the body of POST /api/comments.
type CreateCommentRequest struct {
	VideoID string `json:"videoId"`
	Text    string `json:"text"`
}
