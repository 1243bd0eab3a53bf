package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure this core can surface. Each kind is
// non-fatal and rendered to the user as a message + suggestion pair.
type ErrorKind string

const (
	ErrNoRegionSelected     ErrorKind = "no_region_selected"
	ErrInvalidDateRange     ErrorKind = "invalid_date_range"
	ErrAlreadyRunning       ErrorKind = "already_running"
	ErrTransportUnavailable ErrorKind = "transport_unavailable"
	ErrNoDataFound          ErrorKind = "no_data_found"
	ErrServerFault          ErrorKind = "server_fault"
	ErrUnclassifiedRemote   ErrorKind = "unclassified_remote_error"
	ErrUnsupportedShapeKind ErrorKind = "unsupported_shape_kind"
)

// AnalysisError is the single error type crossing component boundaries.
// Detail carries service-provided diagnostics verbatim when present.
type AnalysisError struct {
	Kind       ErrorKind
	Message    string
	Detail     string
	Suggestion string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsAnalysisError unwraps err into an AnalysisError if it carries one.
func AsAnalysisError(err error) (*AnalysisError, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func NewNoRegionSelected() *AnalysisError {
	return &AnalysisError{
		Kind:       ErrNoRegionSelected,
		Message:    "no region of interest selected",
		Suggestion: "Draw a polygon or circle on the map first.",
	}
}

func NewInvalidDateRange(r DateRange) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrInvalidDateRange,
		Message:    "date range start is after its end",
		Detail:     r.String(),
		Suggestion: "Swap the start and end dates of the period.",
	}
}

func NewAlreadyRunning() *AnalysisError {
	return &AnalysisError{
		Kind:       ErrAlreadyRunning,
		Message:    "an analysis is already in progress",
		Suggestion: "Wait for the current analysis to finish before starting another.",
	}
}

func NewTransportUnavailable(detail string) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrTransportUnavailable,
		Message:    "analysis service did not respond",
		Detail:     detail,
		Suggestion: "Check that the analysis service is running and reachable.",
	}
}

func NewNoDataFound(detail string) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrNoDataFound,
		Message:    "no usable imagery for the selected periods",
		Detail:     detail,
		Suggestion: "Try a different month or widen the date range.",
	}
}

func NewServerFault(detail string) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrServerFault,
		Message:    "analysis service failed to process the request",
		Detail:     detail,
		Suggestion: "The region may be too large; try a smaller area.",
	}
}

func NewUnclassifiedRemote(status int, detail string) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrUnclassifiedRemote,
		Message:    fmt.Sprintf("analysis service returned an unexpected status %d", status),
		Detail:     detail,
		Suggestion: "Retry the analysis; report the detail if it persists.",
	}
}

func NewUnsupportedShapeKind(kind string) *AnalysisError {
	return &AnalysisError{
		Kind:       ErrUnsupportedShapeKind,
		Message:    fmt.Sprintf("cannot normalize shape of kind %q", kind),
		Suggestion: "Only circles and polygons are supported.",
	}
}
