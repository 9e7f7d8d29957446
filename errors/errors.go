package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
)

// ApiError is returned when a request to AppsFlyer could not be completed.
// A response with a non-200 status is not an ApiError: AppsFlyer answers 200
// even for events it rejects, so callers have to look at the body anyway.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to AppsFlyer failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false for any
// ApiError that is not the very same pointer.
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// Unwrap exposes the transport error, so errors.Is(err, context.Canceled)
// and friends work on the error returned by Track.
func (e *ApiError) Unwrap() error {
	return e.SourceErr
}
