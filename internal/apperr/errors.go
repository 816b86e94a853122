// Package apperr defines the error kinds shared by the gateway, the
// derivation engine and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a field is out of range or a required
// relationship does not resolve.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// ConflictError is returned when a uniqueness constraint is violated.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("conflict on field %s", e.Field)
	}
	return fmt.Sprintf("conflict on field %s: %q already exists", e.Field, e.Value)
}

// NotFoundError is returned when the entity targeted by an update or delete
// does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// TransportError wraps a store failure caused by infrastructure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvalidLineItemError is raised by the derivation engine for a line item
// with a non-positive quantity or a negative unit price.
type InvalidLineItemError struct {
	Index     int
	Quantity  float64
	UnitPrice float64
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("invalid line item %d: quantity=%v unit_price=%v", e.Index, e.Quantity, e.UnitPrice)
}

// ======================================================
// Constructors
// ======================================================

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func Conflict(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

func Transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// ======================================================
// Predicates
// ======================================================

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsInvalidLineItem(err error) bool {
	var target *InvalidLineItemError
	return errors.As(err, &target)
}

// IsKnown reports whether err already carries one of the kinds above.
func IsKnown(err error) bool {
	return IsValidation(err) || IsConflict(err) || IsNotFound(err) ||
		IsTransport(err) || IsInvalidLineItem(err)
}
