package model

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrInvalidValue = errors.New("invalid value")
	ErrDuplicate    = errors.New("duplicate identity")
	ErrNotFound     = errors.New("not found")
	ErrReferenced   = errors.New("still referenced")
	ErrInvariant    = errors.New("invariant violation")
)

// Entity names used in error messages.
const (
	EntityAttraction = "attraction"
	EntityItinerary  = "itinerary"
	EntityLocation   = "location"
)

// ValidationError reports a value that failed its type's constraints.
// Message is the constraint description shown to the user.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidValue }

func invalid(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DuplicateIdentityError reports an add or replace that would make two
// entities in the same collection share an identity.
type DuplicateIdentityError struct {
	Entity string
	Key    string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("This %s already exists in the catalog: %s", e.Entity, e.Key)
}

func (e *DuplicateIdentityError) Is(target error) bool { return target == ErrDuplicate }

// DuplicateReferenceError reports adding an attraction to a location that
// already holds it.
type DuplicateReferenceError struct {
	Location   LocationName
	Attraction Name
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("Location %s already contains attraction %s", e.Location, e.Attraction)
}

func (e *DuplicateReferenceError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError reports a missing edit or delete target.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ReferentialIntegrityError reports a delete or identity change of an
// attraction that a location or itinerary still points at.
type ReferentialIntegrityError struct {
	Attraction   Name
	ReferencedBy string // EntityLocation or EntityItinerary
	Referrer     string // name of the referencing entity
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("Attraction %s is still referenced by %s %s; remove it from the %s first",
		e.Attraction, e.ReferencedBy, e.Referrer, e.ReferencedBy)
}

func (e *ReferentialIntegrityError) Is(target error) bool { return target == ErrReferenced }

// InvariantViolationError reports an edit that would break an entity invariant,
// such as leaving a location with no attractions.
type InvariantViolationError struct {
	Entity string
	Key    string
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Entity, e.Key, e.Reason)
}

func (e *InvariantViolationError) Is(target error) bool { return target == ErrInvariant }
