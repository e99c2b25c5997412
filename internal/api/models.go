package api

import (
	"time"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/domain"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
)

// Common request/response structures

// LoginRequest defines the payload for the API-key exchange endpoint.
type LoginRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Message   string        `json:"message"`
	Token     string        `json:"token"`
	User      auth.Identity `json:"user"`
	ExpiresIn string        `json:"expiresIn"`
}

// TokenUser is the decoded token identity echoed by the verify endpoint.
type TokenUser struct {
	UserID    int64     `json:"userId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyResponse defines the successful response for the verify endpoint.
type VerifyResponse struct {
	Message string    `json:"message"`
	User    TokenUser `json:"user"`
}

// DeleteEmployeeResponse wraps the deleted row returned to the caller.
type DeleteEmployeeResponse struct {
	Message  string           `json:"message"`
	Employee *domain.Employee `json:"employee"`
}

// DeleteTaskResponse wraps the deleted row returned to the caller.
type DeleteTaskResponse struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}

// IndexResponse describes the API for the root endpoint.
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
