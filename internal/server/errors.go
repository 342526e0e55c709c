// Package server provides the HTTP REST API for the resume scorer.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownEngine indicates the request named a scoring engine that does
// not exist
type ErrUnknownEngine struct {
	Engine string
}

func (e *ErrUnknownEngine) Error() string {
	return fmt.Sprintf("unknown scoring engine: %s", e.Engine)
}

// ErrEmptyDocument indicates a document contained no usable text after
// preparation
type ErrEmptyDocument struct {
	Document string
}

func (e *ErrEmptyDocument) Error() string {
	return fmt.Sprintf("document %s contains no usable text", e.Document)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrUnknownEngine, *ErrEmptyDocument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
