// Package problem models errors as RFC 9457 Problem Details.
//
// A *Details implements the error interface, so service code can return it
// through ordinary error values:
//
//	if user == nil {
//	    return nil, problem.NewNotFound("user")
//	}
//
// At the HTTP boundary the problem is recovered with errors.As and converted
// into the standard response envelope by response.FromProblem, or written
// directly as application/problem+json via WriteJSON for clients that expect
// the plain RFC shape.
//
// The Type field carries a stable machine token (for example
// "validation_error"), not a URL. The token becomes the envelope error code
// after conversion, so renaming one is a breaking API change.
package problem
