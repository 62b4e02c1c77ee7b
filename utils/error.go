package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies application failures.
type ErrorKind int

const (
	// KindValidation marks malformed bodies, params or query strings.
	KindValidation ErrorKind = iota + 1
	// KindNotFound marks featured-image and tag-by-id lookups that found nothing.
	KindNotFound
	// KindStore marks opaque document-store or object-store failures.
	KindStore
)

// AppError is the tagged error carried across service boundaries.
type AppError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *AppError) Unwrap() error { return e.Err }

// ValidationErr reports a caller-fault constraint violation.
func ValidationErr(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundErr reports an absent featured asset or tag.
func NotFoundErr(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// StoreErr wraps an opaque store failure with its originating message.
func StoreErr(err error, format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindStore, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == KindNotFound
}

// StatusFor maps an error to its HTTP status: 400 for validation,
// 404 for not-found, 502 for store failures, 500 otherwise.
func StatusFor(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		case KindStore:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}

// JSONError sends the standardized JSON error response for err.
func JSONError(c *gin.Context, err error) {
	GetLogger().Warn("request failed", zap.Error(err))
	c.JSON(StatusFor(err), gin.H{"error": err.Error()})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
