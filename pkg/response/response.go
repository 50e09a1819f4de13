package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the unified API response format.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Application-level error codes. Distinct kinds so clients can react to the
// cause of a failure instead of parsing messages.
const (
	CodeOK         = 0
	CodeBadRequest = 400
	CodeAuth       = 401
	CodeForbidden  = 403
	CodeNotFound   = 404
	CodeConflict   = 409
	CodeServer     = 500

	// CodeValidation covers missing or malformed fields in a submitted form.
	CodeValidation = 4001
	// CodeTransition covers disallowed application status transitions.
	CodeTransition = 4091
)

// AppError represents a structured application error with HTTP status and error code.
type AppError struct {
	HTTPStatus int                    // HTTP status code (e.g. 400, 404, 500)
	Code       int                    // Application-level error code
	Message    string                 // Human-readable error message
	Fields     map[string]string      // Field-level validation messages, if any
}

func (e *AppError) Error() string {
	return e.Message
}

// Pre-defined error constructors

func NewBadRequest(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Code: CodeBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Code: CodeAuth, Message: msg}
}

func NewForbidden(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusForbidden, Code: CodeForbidden, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusConflict, Code: CodeConflict, Message: msg}
}

func NewServerError(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Code: CodeServer, Message: msg}
}

// NewValidation builds a field-keyed validation error.
func NewValidation(fields map[string]string) *AppError {
	return &AppError{
		HTTPStatus: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    "validation failed",
		Fields:     fields,
	}
}

// NewTransition reports a disallowed status transition.
func NewTransition(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusConflict, Code: CodeTransition, Message: msg}
}

// --- Gin response helpers ---

// Success sends a 200 OK response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "ok",
		Data:    data,
	})
}

// Created sends a 201 Created response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    CodeOK,
		Message: "created",
		Data:    data,
	})
}

// Error sends an error response. If err is an *AppError, its code and status
// are used; otherwise a generic 500 internal server error is returned.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		resp := Response{
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			resp.Data = gin.H{"fields": appErr.Fields}
		}
		c.JSON(appErr.HTTPStatus, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, Response{
		Code:    CodeServer,
		Message: err.Error(),
	})
}

// Convenience error response functions

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: CodeBadRequest, Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Response{Code: CodeAuth, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Response{Code: CodeForbidden, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: CodeNotFound, Message: msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Response{Code: CodeServer, Message: msg})
}
