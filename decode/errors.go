package decode

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrDecode is the sentinel all decode failures match via errors.Is().
var ErrDecode = errors.New("decode failed")

// FieldError is one field-level decode problem: where it was found and why it
// was rejected.
type FieldError struct {
	Location string // payload key path, empty for the payload itself
	Reason   string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Location == "" {
		return e.Reason
	}
	return e.Location + ": " + e.Reason
}

// Is implements errors.Is() for comparing with ErrDecode.
func (e *FieldError) Is(target error) bool {
	return target == ErrDecode
}

// Error aggregates every field-level problem found in one decode pass.
type Error struct {
	Fields []*FieldError
}

// Error renders all problems joined with "; ", in the order they were found.
func (e *Error) Error() string {
	agg := &multierror.Error{ErrorFormat: semicolonFormat}
	for _, f := range e.Fields {
		agg = multierror.Append(agg, f)
	}
	return agg.Error()
}

// Is implements errors.Is() for comparing with ErrDecode.
func (e *Error) Is(target error) bool {
	return target == ErrDecode
}

// semicolonFormat joins individual reasons with a semicolon-space separator,
// producing a single one-line diagnostic.
func semicolonFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// accumulator collects field errors during one decode pass.
type accumulator struct {
	prefix string
	fields *[]*FieldError
}

func newAccumulator() *accumulator {
	return &accumulator{fields: new([]*FieldError)}
}

// at returns a view of the accumulator whose locations are nested under key.
func (a *accumulator) at(key string) *accumulator {
	prefix := key
	if a.prefix != "" {
		prefix = a.prefix + "." + key
	}
	return &accumulator{prefix: prefix, fields: a.fields}
}

func (a *accumulator) add(location, reason string) {
	switch {
	case location == "":
		location = a.prefix
	case a.prefix != "":
		location = a.prefix + "." + location
	}
	*a.fields = append(*a.fields, &FieldError{Location: location, Reason: reason})
}

// err returns the aggregated decode error, or nil when no problem was found.
func (a *accumulator) err() error {
	if len(*a.fields) == 0 {
		return nil
	}
	return &Error{Fields: *a.fields}
}
