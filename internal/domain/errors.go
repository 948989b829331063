package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrInvalidQuery      = errors.New("invalid query")
)

// IdentifierError reports a class or document id that is malformed or has
// no entry in the indexes or documents.
type IdentifierError struct {
	ID string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("vnclass identifier %q not found", e.ID)
}

func (e *IdentifierError) Unwrap() error { return ErrUnknownIdentifier }

// NewIdentifierError creates an IdentifierError for id.
func NewIdentifierError(id string) *IdentifierError {
	return &IdentifierError{ID: id}
}

// QueryError reports mutually exclusive filters supplied together.
type QueryError struct {
	Filters []string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("specify at most one of lemma, sense, document, parent (got %s)", strings.Join(e.Filters, ", "))
}

func (e *QueryError) Unwrap() error { return ErrInvalidQuery }
