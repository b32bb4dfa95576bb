package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/JenilSojitra/GenericApiReponse/problem"
)

// Result pairs a payload with an intended HTTP status, for handlers that
// want a status other than 200 without building the envelope themselves.
type Result struct {
	Value  any
	Status int
}

// Handler is the signature Wrap adapts: return a value to be coerced into
// an envelope, or an error to be converted into a failure envelope.
type Handler func(r *http.Request) (any, error)

// WriteJSON writes v as a JSON body with the given status. A nil v writes
// headers only.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Write applies the wrapping decision to a handler result and writes it.
//
//   - An Envelope is passed through unchanged at its resolved status.
//   - nil becomes a 204 with no body.
//   - A Result is wrapped with Ok at its intended status (200 when unset);
//     a Result with a nil value also becomes a bodyless 204.
//   - A json.RawMessage is written verbatim, unwrapped.
//   - Anything else is wrapped with Ok at 200.
func Write(w http.ResponseWriter, v any) {
	switch t := v.(type) {
	case Envelope:
		WriteJSON(w, t.HTTPStatus(), t)
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case Result:
		if t.Value == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		status := t.Status
		if status == 0 {
			status = http.StatusOK
		}
		WriteJSON(w, status, Ok(t.Value, WithCode(status)))
	case json.RawMessage:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(t)
	default:
		env := Ok(v)
		WriteJSON(w, env.HTTPStatus(), env)
	}
}

// Wrap adapts a Handler into an http.HandlerFunc. Successful results go
// through Write; *problem.Details errors become the matching failure
// envelope; any other error becomes a redacted 500 failure. Panics are left
// to the middleware.Recovery fault boundary.
func Wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := h(r)
		if err != nil {
			var p *problem.Details
			if errors.As(err, &p) {
				env := FromProblem(p)
				WriteJSON(w, env.HTTPStatus(), env)
				return
			}
			env := FailWith(
				NewError(CodeInternalError, "An unexpected error occurred"),
				WithMessage("Internal server error"),
				WithCode(http.StatusInternalServerError),
			)
			WriteJSON(w, http.StatusInternalServerError, env)
			return
		}
		Write(w, v)
	}
}

// WrapMethod is Wrap restricted to one HTTP method.
func WrapMethod(method string, h Handler) http.HandlerFunc {
	return Wrap(func(r *http.Request) (any, error) {
		if r.Method != method {
			return nil, problem.NewMethodNotAllowed(method)
		}
		return h(r)
	})
}

// ReadJSON strictly decodes a request body into dst: unknown fields and
// trailing data are rejected. It returns a ready-to-convert problem rather
// than a bare error so handlers can return it directly.
func ReadJSON(r *http.Request, dst any) *problem.Details {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		// http.MaxBytesReader error text starts with "http: request body too large"
		if strings.HasPrefix(err.Error(), "http: request body too large") {
			return problem.NewPayloadTooLarge("request body too large")
		}
		return problem.NewBadRequest("malformed JSON body")
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return problem.NewBadRequest("unexpected data after JSON body")
	}

	return nil
}
