package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates no stored order has the requested id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrReferenceNotFound indicates an order points at a catalog id that does not exist.
	// Returned wrapped in one or more *ReferenceError values.
	ErrReferenceNotFound = errors.New("referenced catalog item not found")

	// ErrIdempotencyKeyInFlight indicates another request holding the same
	// Idempotency-Key has not finished yet.
	ErrIdempotencyKeyInFlight = errors.New("request with this idempotency key is in progress")
)

// Foreign key field names, matching the wire representation.
const (
	FieldPaintID      = "paintId"
	FieldInteriorID   = "interiorId"
	FieldTechnologyID = "technologyId"
	FieldWheelID      = "wheelId"
)

// ReferenceError names the foreign key that failed to resolve.
type ReferenceError struct {
	Field string
	ID    int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not match any catalog item", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// ReferenceFields collects every *ReferenceError inside err, including errors
// combined with errors.Join, as field name → message.
func ReferenceFields(err error) map[string]string {
	fields := make(map[string]string)
	collectReferences(err, fields)
	return fields
}

func collectReferences(err error, fields map[string]string) {
	if err == nil {
		return
	}
	if ref, ok := err.(*ReferenceError); ok {
		fields[ref.Field] = fmt.Sprintf("No catalog item with id %d", ref.ID)
		return
	}
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			collectReferences(e, fields)
		}
	case interface{ Unwrap() error }:
		collectReferences(x.Unwrap(), fields)
	}
}
