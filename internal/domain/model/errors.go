package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrStationNotFound   = errors.New("station not found")
	ErrMissingParameters = errors.New("missing parameters")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrBadGateway        = errors.New("bad gateway")
)

// ParameterError names the query parameter that caused ErrMissingParameters or ErrInvalidParameter.
type ParameterError struct {
	Name   string
	Reason string
	Err    error
}

func NewMissingParameter(name string) *ParameterError {
	return &ParameterError{Name: name, Err: ErrMissingParameters}
}

func NewInvalidParameter(name, reason string) *ParameterError {
	return &ParameterError{Name: name, Reason: reason, Err: ErrInvalidParameter}
}

func (e *ParameterError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Name)
	}
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Name, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// UpstreamError describes a failed call to the weather provider.
// StatusCode is 0 when no response was received.
type UpstreamError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("weather provider unreachable: %v", e.Err)
	case e.Reason != "":
		return fmt.Sprintf("weather provider answered %d: %s", e.StatusCode, e.Reason)
	default:
		return fmt.Sprintf("weather provider answered %d", e.StatusCode)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes every UpstreamError match ErrBadGateway.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrBadGateway
}
