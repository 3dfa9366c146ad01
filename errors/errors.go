package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an application error into the storefront taxonomy.
type Kind string

const (
	KindAuthRequired Kind = "auth_required"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
)

// Error represents an application error
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(kind Kind, code int, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func AuthRequired(message string, err error) *Error {
	return New(KindAuthRequired, http.StatusUnauthorized, message, err)
}

func Validation(message string, err error) *Error {
	return New(KindValidation, http.StatusBadRequest, message, err)
}

func NotFound(message string, err error) *Error {
	return New(KindNotFound, http.StatusNotFound, message, err)
}

func Server(message string, err error) *Error {
	return New(KindServer, http.StatusBadGateway, message, err)
}

func Network(message string, err error) *Error {
	return New(KindNetwork, http.StatusServiceUnavailable, message, err)
}

// KindOf extracts the taxonomy kind from any error chain. Errors that are
// not application errors count as server errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HandleError writes a typed error response for Gin handlers.
func HandleError(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = New(KindServer, http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Code, gin.H{"kind": appErr.Kind, "error": appErr.Message})
}
