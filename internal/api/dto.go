package api

import "github.com/smilesofhope/hopecms/internal/models"

// LoginRequest is the request body for POST /admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// PostListResponse wraps the ordered post list.
type PostListResponse struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

// DraftResponse wraps the current (or newly opened) draft.
type DraftResponse struct {
	Draft models.Draft `json:"draft"`
}

// UploadResponse is returned after converting an upload to a data URI.
type UploadResponse struct {
	DataURI string `json:"data_uri"`
	Size    int64  `json:"size"`
}

// FormResponse reports a form relay result.
type FormResponse struct {
	Sent bool `json:"sent"`
}

// ChatRequest is the request body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
