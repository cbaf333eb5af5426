package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// ValidationError marks a request rejected before any write was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// WriteErrorCategory distinguishes store write rejections for user-facing messages.
type WriteErrorCategory string

const (
	WriteErrorPermission WriteErrorCategory = "permission"
	WriteErrorQuota      WriteErrorCategory = "quota"
	WriteErrorGeneric    WriteErrorCategory = "generic"
)

// WriteError wraps a store write rejection with its category. Write-path errors
// always propagate to the caller; read-path errors never do.
type WriteError struct {
	Op       string
	Category WriteErrorCategory
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s write rejected: %v", e.Op, e.Category, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WrapWriteError categorizes a Firestore write failure by its gRPC status code.
func WrapWriteError(op string, err error) *WriteError {
	category := WriteErrorGeneric
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.PermissionDenied, codes.Unauthenticated:
			category = WriteErrorPermission
		case codes.ResourceExhausted:
			category = WriteErrorQuota
		}
	}
	return &WriteError{Op: op, Category: category, Err: err}
}

// AsWriteError unwraps err into a *WriteError if possible.
func AsWriteError(err error) (*WriteError, bool) {
	var we *WriteError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}
