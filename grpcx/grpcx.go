// Package grpcx converts gRPC status errors into RFC 9457 problems so that
// services fronting gRPC backends answer with the same response envelope as
// everything else.
package grpcx

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JenilSojitra/GenericApiReponse/problem"
	"github.com/JenilSojitra/GenericApiReponse/response"
)

// Problem converts a gRPC status into a problem. A nil or OK status
// returns nil.
func Problem(st *status.Status) *problem.Details {
	if st == nil || st.Code() == codes.OK {
		return nil
	}

	detail := st.Message()

	switch st.Code() {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return problem.NewBadRequest(detail)
	case codes.Unauthenticated:
		return problem.NewUnauthorized(detail)
	case codes.PermissionDenied:
		return problem.NewForbidden(detail)
	case codes.NotFound:
		return &problem.Details{
			Type:   problem.TypeNotFound,
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: detail,
		}
	case codes.AlreadyExists, codes.Aborted:
		return problem.NewConflict(detail)
	case codes.ResourceExhausted:
		return &problem.Details{
			Type:   problem.TypeRateLimited,
			Title:  "Too Many Requests",
			Status: http.StatusTooManyRequests,
			Detail: detail,
		}
	case codes.Unimplemented:
		return &problem.Details{
			Type:   problem.TypeUpstream,
			Title:  "Not Implemented",
			Status: http.StatusNotImplemented,
			Detail: detail,
		}
	case codes.Unavailable:
		return &problem.Details{
			Type:   problem.TypeUpstream,
			Title:  "Service Unavailable",
			Status: http.StatusServiceUnavailable,
			Detail: detail,
		}
	case codes.DeadlineExceeded:
		return &problem.Details{
			Type:   problem.TypeUpstream,
			Title:  "Gateway Timeout",
			Status: http.StatusGatewayTimeout,
			Detail: detail,
		}
	default:
		// Canceled, Unknown, Internal, DataLoss
		return problem.NewInternal(detail)
	}
}

// FromError converts any error into a problem using its gRPC status. Errors
// that carry no status are treated as codes.Unknown, per status.FromError.
// A nil error returns nil.
func FromError(err error) *problem.Details {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	return Problem(st)
}

// Write converts err and writes the failure envelope. A nil error writes
// nothing and reports false.
func Write(w http.ResponseWriter, err error) bool {
	p := FromError(err)
	if p == nil {
		return false
	}
	env := response.FromProblem(p)
	response.WriteJSON(w, env.HTTPStatus(), env)
	return true
}
