package response

import "net/http"

// Well-known envelope error codes emitted by this library. Application code
// is free to use its own codes alongside these.
const (
	CodeInternalError = "INTERNAL_ERROR"
	CodeRateLimited   = "RATE_LIMITED"
)

// Error is a single failure entry inside an envelope. Code and Field are
// pointers so that absent values serialize as JSON null rather than "".
type Error struct {
	Code    *string        `json:"code"`
	Message string         `json:"message"`
	Field   *string        `json:"field"`
	Meta    map[string]any `json:"meta"`
}

// NewError builds an Error with a machine code and a message.
func NewError(code, message string) Error {
	return Error{Code: &code, Message: message}
}

// NewFieldError builds a validation Error pinned to a field.
func NewFieldError(code, message, field string) Error {
	return Error{Code: &code, Message: message, Field: &field}
}

// Response is the standard envelope every endpoint returns. All six keys are
// always present on the wire, null when absent; field order matches the
// documented shape. Instances are built through Ok, NoContent, Fail and
// FailWith and never mutated afterwards.
type Response[T any] struct {
	Success bool           `json:"success"`
	Message *string        `json:"message"`
	Data    *T             `json:"data"`
	Errors  []Error        `json:"errors"`
	Meta    map[string]any `json:"meta"`
	Code    int            `json:"code"`
}

// Envelope is satisfied by every envelope shape in this package. The write
// path uses it as the "already wrapped" tag: values implementing Envelope are
// serialized as-is and never wrapped a second time.
type Envelope interface {
	HTTPStatus() int
}

// HTTPStatus resolves the wire status for the envelope: the explicit code
// when set, otherwise 200 for success and 400 for failure.
func (r *Response[T]) HTTPStatus() int {
	if r.Code != 0 {
		return r.Code
	}
	if r.Success {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

// Ok builds a success envelope carrying data. The status code defaults to
// 200 and can be overridden with WithCode.
func Ok[T any](data T, opts ...Option) *Response[T] {
	s := newSettings(http.StatusOK, opts)
	return &Response[T]{
		Success: true,
		Message: s.message,
		Data:    &data,
		Meta:    s.meta,
		Code:    s.code,
	}
}

// NoContent builds a success envelope with no payload, defaulting to 204.
func NoContent(opts ...Option) *Response[any] {
	s := newSettings(http.StatusNoContent, opts)
	return &Response[any]{
		Success: true,
		Message: s.message,
		Meta:    s.meta,
		Code:    s.code,
	}
}

// Fail builds a failure envelope from one or more errors. The status code
// defaults to 400. A nil slice is a programming error and panics; an empty
// slice is accepted but produces a failure with no entries, which clients
// have little use for.
func Fail(errs []Error, opts ...Option) *Response[any] {
	if errs == nil {
		panic("response: Fail called with nil errors")
	}
	s := newSettings(http.StatusBadRequest, opts)
	return &Response[any]{
		Message: s.message,
		Errors:  errs,
		Meta:    s.meta,
		Code:    s.code,
	}
}

// FailWith builds a failure envelope from a single error.
func FailWith(err Error, opts ...Option) *Response[any] {
	return Fail([]Error{err}, opts...)
}
