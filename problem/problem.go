package problem

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Machine-readable problem type tokens. These travel verbatim into the
// envelope error code when a Details is converted via response.FromProblem,
// so they are stable identifiers, not URLs.
const (
	TypeBadRequest       = "bad_request"
	TypeUnauthorized     = "unauthorized"
	TypeForbidden        = "forbidden"
	TypeNotFound         = "not_found"
	TypeMethodNotAllowed = "method_not_allowed"
	TypeConflict         = "conflict"
	TypePayloadTooLarge  = "payload_too_large"
	TypeValidation       = "validation_error"
	TypeRateLimited      = "rate_limited"
	TypeInternal         = "internal_error"
	TypeUpstream         = "upstream_error"
)

// Details describes an error in the shape of RFC 9457 Problem Details.
// It is the interchange format between validation/error-handling code and
// the response envelope: handlers return a *Details and the boundary turns
// it into a failure envelope.
type Details struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError pins a validation failure to a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface so a *Details can flow through
// ordinary error returns and be recovered with errors.As at the boundary.
func (d *Details) Error() string {
	return fmt.Sprintf("[%d] %s: %s", d.Status, d.Title, d.Detail)
}

// WithInstance returns a copy of d with the instance URI set.
func (d *Details) WithInstance(instance string) *Details {
	cp := *d
	cp.Instance = instance
	return &cp
}

// WriteJSON writes the problem itself as an application/problem+json body.
// Most callers should prefer converting to the response envelope instead;
// this exists for handlers that negotiate the plain RFC 9457 shape.
func (d *Details) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(d.Status)
	_ = json.NewEncoder(w).Encode(d)
}

// Constructors for the common problem classes.

func NewBadRequest(detail string) *Details {
	return &Details{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

func NewUnauthorized(detail string) *Details {
	return &Details{
		Type:   TypeUnauthorized,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: detail,
	}
}

func NewForbidden(detail string) *Details {
	return &Details{
		Type:   TypeForbidden,
		Title:  "Forbidden",
		Status: http.StatusForbidden,
		Detail: detail,
	}
}

func NewNotFound(resource string) *Details {
	return &Details{
		Type:   TypeNotFound,
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
	}
}

func NewMethodNotAllowed(allowed string) *Details {
	return &Details{
		Type:   TypeMethodNotAllowed,
		Title:  "Method Not Allowed",
		Status: http.StatusMethodNotAllowed,
		Detail: fmt.Sprintf("Only %s method is allowed", allowed),
	}
}

func NewConflict(detail string) *Details {
	return &Details{
		Type:   TypeConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
	}
}

func NewPayloadTooLarge(detail string) *Details {
	return &Details{
		Type:   TypePayloadTooLarge,
		Title:  "Payload Too Large",
		Status: http.StatusRequestEntityTooLarge,
		Detail: detail,
	}
}

// NewValidation builds a validation problem from per-field failures.
// The detail line summarizes the first failure so log scrapers and humans
// get something useful without unpacking the errors array.
func NewValidation(errors []FieldError) *Details {
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	return &Details{
		Type:   TypeValidation,
		Title:  "Validation Failed",
		Status: http.StatusBadRequest,
		Detail: detail,
		Errors: errors,
	}
}

func NewRateLimited(retryAfter int) *Details {
	return &Details{
		Type:   TypeRateLimited,
		Title:  "Too Many Requests",
		Status: http.StatusTooManyRequests,
		Detail: fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter),
	}
}

func NewInternal(detail string) *Details {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &Details{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

func NewUpstream(detail string) *Details {
	return &Details{
		Type:   TypeUpstream,
		Title:  "Upstream Error",
		Status: http.StatusBadGateway,
		Detail: detail,
	}
}
