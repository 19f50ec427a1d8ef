package models

// MessageResponse is the body of every error response and of simple
// acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is used by the upload endpoint, which additionally reports
// a "success"/"failed" status string.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SignupResponse is returned after a successful registration.
type SignupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// LoginUser is the user projection attached to a login response.
type LoginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommentResponse is returned after a comment has been posted.
type CommentResponse struct {
	Message string  `json:"message"`
	Comment Comment `json:"comment"`
}
