package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the unified API response envelope. Every body leads with
// Success; list responses add Count, failures add Error and either Details
// (validation) or Message.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details []string    `json:"details,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Stable error kinds, suitable for programmatic branching by clients.
const (
	KindValidation   = "Validation Error"
	KindDuplicate    = "Duplicate Entry"
	KindInvalidID    = "Invalid ID Format"
	KindNotFound     = "Not Found"
	KindAuthRequired = "Authentication Required"
	KindBadLogin     = "Invalid credentials"
	KindUnavailable  = "Database Unavailable"
	KindInternal     = "Internal Server Error"
)

// Sentinel errors returned by the storage and auth layers. Handlers never
// build status codes themselves; they pass one of these (or the typed errors
// below) to Error.
var (
	ErrNotFound           = errors.New("no matching record found")
	ErrInvalidID          = errors.New("invalid id format")
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("database not connected")
)

// ValidationError carries every field violation found in one request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d violation(s)", len(e.Messages))
}

// DuplicateError reports a uniqueness constraint violation on Field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// --- Success helpers ---

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response with the created record.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// List sends a 200 response with a record list and its count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{Success: true, Count: &count, Data: data})
}

// Message sends a 200 confirmation without data.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: msg})
}

// --- Error mapping ---

// Error classifies err into the HTTP outcome taxonomy and writes the
// response. Classification order matters: a single failure can resemble more
// than one category, so validation is inspected first, then duplicates, then
// id-format errors, before falling through to 500.
func Error(c *gin.Context, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   KindValidation,
			Details: vErr.Messages,
		})
		return
	}

	var dErr *DuplicateError
	if errors.As(err, &dErr) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   KindDuplicate,
			Message: fmt.Sprintf("A record with this %s already exists", dErr.Field),
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   KindInvalidID,
			Message: "The provided ID is not a valid object ID",
		})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   KindNotFound,
		})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Response{
			Success: false,
			Error:   KindBadLogin,
		})
	case errors.Is(err, ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, Response{
			Success: false,
			Error:   KindAuthRequired,
		})
	case errors.Is(err, ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   KindUnavailable,
			Message: "Database not connected",
		})
	default:
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   KindInternal,
			Message: "An unexpected error occurred",
		})
	}
}
